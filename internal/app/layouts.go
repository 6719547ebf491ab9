package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/cmini/internal/engine/analyzer"
	"go.trai.ch/cmini/internal/engine/board"
	"go.trai.ch/cmini/internal/engine/registry"
	"go.trai.ch/cmini/internal/engine/render"
	"go.trai.ch/zerr"
)

// Add validates a submission and registers it under the caller's id.
func (a *App) Add(caller Caller, name, matrix string) (*domain.Layout, error) {
	if err := a.begin(caller); err != nil {
		return nil, err
	}
	l, err := a.parser.Build(name, caller.ID, matrix)
	if err != nil {
		return nil, err
	}
	if err := a.registry.Add(l); err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("added %s (%s board)", l.Name, l.Board))
	return l, nil
}

// Remove deletes a layout owned by the caller. With sudo a privileged caller
// may remove any layout. Likes and links of the layout are dropped with it.
func (a *App) Remove(caller Caller, name string, sudo bool) (*domain.Layout, error) {
	if err := a.begin(caller); err != nil {
		return nil, err
	}
	privileged, err := a.sudo(caller, sudo)
	if err != nil {
		return nil, err
	}
	l, err := a.registry.Remove(board.NormalizeName(name), caller.ID, privileged)
	if err != nil {
		return nil, err
	}
	a.community.ForgetLayout(l.Name)
	return l, nil
}

// Rename moves a layout to a new, validated name. The cached stats and likes
// follow the layout.
func (a *App) Rename(caller Caller, oldName, newName string, sudo bool) (*domain.Layout, error) {
	if err := a.begin(caller); err != nil {
		return nil, err
	}
	privileged, err := a.sudo(caller, sudo)
	if err != nil {
		return nil, err
	}

	oldName, newName = board.NormalizeName(oldName), board.NormalizeName(newName)
	if err := board.CheckName(newName); err != nil {
		return nil, err
	}
	l, err := a.registry.Rename(oldName, newName, caller.ID, privileged)
	if err != nil {
		return nil, err
	}
	a.cache.Rekey(oldName, newName)
	a.community.RenameLayout(oldName, newName)
	return l, nil
}

// Assign hands a layout to another author, given either a numeric id that
// must already be known or a name matched against every known author.
// Only privileged callers may assign.
func (a *App) Assign(caller Caller, name, author string) (*domain.Layout, string, error) {
	if err := a.begin(caller); err != nil {
		return nil, "", err
	}
	if !a.IsPrivileged(caller.ID) {
		return nil, "", domain.ErrNotPrivileged
	}

	var owner uint64
	if id, err := strconv.ParseUint(author, 10, 64); err == nil {
		if !a.community.HasAuthor(id) {
			msg := fmt.Sprintf("author with id `%d` does not exist", id)
			return nil, "", zerr.With(zerr.Wrap(domain.ErrAuthorNotFound, msg), "author", id)
		}
		owner = id
	} else {
		owner, err = a.community.FindAuthor(author)
		if err != nil {
			return nil, "", err
		}
	}

	l, err := a.registry.Assign(board.NormalizeName(name), owner)
	if err != nil {
		return nil, "", err
	}
	return l, a.community.AuthorName(owner), nil
}

// SetLink attaches an external link to a layout owned by the caller. An empty
// url removes the link.
func (a *App) SetLink(caller Caller, name, url string, sudo bool) error {
	if err := a.begin(caller); err != nil {
		return err
	}
	privileged, err := a.sudo(caller, sudo)
	if err != nil {
		return err
	}

	name = board.NormalizeName(name)
	l, ok := a.registry.Get(name)
	if !ok {
		return zerr.With(domain.ErrLayoutNotFound, "layout", name)
	}
	if l.Owner != caller.ID && !privileged {
		return registry.NotOwner(name, fmt.Sprintf("link %s --sudo", name))
	}
	a.community.SetLink(l.Name, strings.TrimSpace(url))
	return nil
}

// View finds the layout closest to query and gathers everything shown for it,
// using the caller's preferred corpus. Stats that cannot be computed for that
// corpus are left out rather than failing the view.
func (a *App) View(caller Caller, query string) (*render.View, error) {
	a.see(caller)
	l, ok := a.registry.Find(strings.ToLower(strings.TrimSpace(query)))
	if !ok {
		return nil, zerr.With(domain.ErrLayoutNotFound, "query", query)
	}

	v := &render.View{
		Layout: l,
		Author: a.community.AuthorName(l.Owner),
		Likes:  a.community.LikeCount(l.Name),
		Corpus: a.community.Corpus(caller.ID),
	}
	v.Link, _ = a.community.Link(l.Name)

	stat, err := a.cache.Fetch(l, v.Corpus)
	if err := a.tolerate(err); err != nil {
		return nil, err
	}
	v.Stat = stat
	if stat == nil {
		return v, nil
	}

	monograms, err := a.corpora.Load(v.Corpus, domain.Monogram)
	if err := a.tolerate(err); err != nil {
		return nil, err
	}
	if monograms != nil {
		usage, err := analyzer.FingersUsage(l, monograms)
		if err := a.tolerate(err); err != nil {
			return nil, err
		}
		v.Usage = usage
	}
	return v, nil
}

// tolerate swallows missing and degenerate inputs with a warning.
func (a *App) tolerate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrLookup) || errors.Is(err, domain.ErrDegenerate) {
		a.logger.Warn(err.Error())
		return nil
	}
	return err
}

// Stats returns the cached stat of a layout without computing anything. An
// empty corpus means the caller's preferred corpus.
func (a *App) Stats(caller Caller, name, corpus string) (*domain.Stat, error) {
	if corpus == "" {
		corpus = a.community.Corpus(caller.ID)
	}
	stat, ok := a.cache.Get(board.NormalizeName(name), corpus)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrLookup, "no cached stats"), "layout", name)
		return nil, zerr.With(err, "corpus", corpus)
	}
	return stat, nil
}
