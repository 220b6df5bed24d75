package redis

import "github.com/mcoot/royalsquare/internal/model"

// keyspace builds every key under one prefix
type keyspace struct {
	prefix string
}

func (k keyspace) game(id model.GameID) string {
	return k.prefix + ":game:" + string(id)
}

// summaries is a hash of game id to encoded summary
func (k keyspace) summaries() string {
	return k.prefix + ":summaries"
}

// summaryOrder is a sorted set of game ids scored by completion time
func (k keyspace) summaryOrder() string {
	return k.prefix + ":summaries:by_completion"
}

func (k keyspace) dictionary() string {
	return k.prefix + ":dictionary"
}
