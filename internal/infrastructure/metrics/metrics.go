package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_list_cache_hits_total",
		Help: "Number of album list queries served from the page cache.",
	})
	listCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_list_cache_misses_total",
		Help: "Number of album list queries that required a remote fetch.",
	})
	cacheClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_cache_clears_total",
		Help: "Number of wholesale page cache invalidations after mutations.",
	})
	votesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_votes_submitted_total",
		Help: "Number of vote mutations accepted by the authority.",
	})
	votesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_votes_failed_total",
		Help: "Number of vote mutations that failed.",
	})
	votesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_votes_suppressed_total",
		Help: "Number of vote requests dropped because one was already in flight for the album.",
	})
	albumsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crately_albums_deleted_total",
		Help: "Number of albums deleted through the session.",
	})
)

func IncListHit() { listCacheHits.Inc() }

func IncListMiss() { listCacheMisses.Inc() }

func IncCacheClear() { cacheClears.Inc() }

func IncVoteSubmitted() { votesSubmitted.Inc() }

func IncVoteFailed() { votesFailed.Inc() }

func IncVoteSuppressed() { votesSuppressed.Inc() }

func IncAlbumDeleted() { albumsDeleted.Inc() }
