package app

import (
	"slices"
	"strings"

	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

// Like records that the caller likes the layout closest to query and returns
// the layout name with its new like count.
func (a *App) Like(caller Caller, query string) (string, int, error) {
	if err := a.begin(caller); err != nil {
		return "", 0, err
	}
	name, err := a.find(query)
	if err != nil {
		return "", 0, err
	}
	n, err := a.community.Like(name, caller.ID)
	return name, n, err
}

// Unlike withdraws the caller's like from the layout closest to query.
func (a *App) Unlike(caller Caller, query string) (string, int, error) {
	if err := a.begin(caller); err != nil {
		return "", 0, err
	}
	name, err := a.find(query)
	if err != nil {
		return "", 0, err
	}
	n, err := a.community.Unlike(name, caller.ID)
	return name, n, err
}

// Likes returns the sorted names of every layout the caller likes.
func (a *App) Likes(caller Caller) []string {
	a.see(caller)
	return a.community.Liked(caller.ID)
}

// Corpus returns the caller's preferred corpus.
func (a *App) Corpus(caller Caller) string {
	return a.community.Corpus(caller.ID)
}

// SetCorpus changes the caller's preferred corpus to an existing one.
func (a *App) SetCorpus(caller Caller, corpus string) (string, error) {
	a.see(caller)
	corpus = strings.ToLower(strings.TrimSpace(corpus))
	names, err := a.corpora.List()
	if err != nil {
		return "", err
	}
	if !slices.Contains(names, corpus) {
		return "", zerr.With(zerr.Wrap(domain.ErrCorpusNotFound, "the corpus `"+corpus+"` doesn't exist"), "corpus", corpus)
	}
	a.community.SetCorpus(caller.ID, corpus)
	return corpus, nil
}

// Corpora returns every available corpus, sorted.
func (a *App) Corpora() ([]string, error) {
	return a.corpora.List()
}

func (a *App) find(query string) (string, error) {
	l, ok := a.registry.Find(strings.ToLower(strings.TrimSpace(query)))
	if !ok {
		return "", zerr.With(domain.ErrLayoutNotFound, "query", query)
	}
	return l.Name, nil
}
