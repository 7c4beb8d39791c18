package utils

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abelgk/crately/internal/domain/entity"
)

// TallyVotes partitions a vote set into up and down counts.
func TallyVotes(votes []entity.Vote) (up, down int) {
	for _, v := range votes {
		switch v.Value {
		case entity.VoteUp:
			up++
		case entity.VoteDown:
			down++
		}
	}
	return up, down
}

// NetScore returns up-count minus down-count for a vote set. It drives the
// ranking of the visible collection.
func NetScore(votes []entity.Vote) int {
	up, down := TallyVotes(votes)
	return up - down
}

// RankAlbums returns a new slice sorted by net score descending, ties broken
// by title ascending with locale-aware collation. The input is never mutated;
// ranking is a view, recomputed on every read, not stored state.
func RankAlbums(albums []entity.Album) []entity.Album {
	ranked := make([]entity.Album, len(albums))
	copy(ranked, albums)

	coll := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := NetScore(ranked[i].Votes), NetScore(ranked[j].Votes)
		if si != sj {
			return si > sj
		}
		return coll.CompareString(ranked[i].Title, ranked[j].Title) < 0
	})
	return ranked
}
