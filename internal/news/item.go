// Package news defines the news items shown by Cyber News Network.
package news

import "time"

// Kind is the type tag carried by every item.
type Kind string

const (
	KindExpert        Kind = "expert"
	KindLive          Kind = "live"
	KindPoll          Kind = "poll"
	KindUserGenerated Kind = "user-generated"
)

// Meta holds the fields shared by every item variant.
type Meta struct {
	Title       string
	Description string
	PublishedAt time.Time
	Category    string
}

// Info returns the shared fields. Promoted into every variant.
func (m Meta) Info() Meta { return m }

// Item is one of Expert, Live, Poll or UserGenerated.
// The set is closed: renderers switch over the concrete types.
type Item interface {
	Kind() Kind
	Info() Meta
	item()
}

// Engagement counts reader interaction on an expert article.
type Engagement struct {
	Comments int
	Shares   int
}

// Expert is an analysis piece written by a named specialist.
type Expert struct {
	Meta
	Author      string
	AuthorTitle string
	ReadTime    string
	Engagement  *Engagement // nil when the article has no engagement data
}

// Live is a streaming event card.
type Live struct {
	Meta
	Viewers int
	Status  string
}

// Poll is an interactive poll. TotalVotes is informational only; the running
// tally shown on screen comes from the session's vote counters.
type Poll struct {
	Meta
	TotalVotes int
}

// UserGenerated is an article submitted by a community member.
type UserGenerated struct {
	Meta
	Author     string
	AuthorType string
	Verified   bool
}

func (Expert) Kind() Kind        { return KindExpert }
func (Live) Kind() Kind          { return KindLive }
func (Poll) Kind() Kind          { return KindPoll }
func (UserGenerated) Kind() Kind { return KindUserGenerated }

func (Expert) item()        {}
func (Live) item()          {}
func (Poll) item()          {}
func (UserGenerated) item() {}

// Byline is the author block of an item: a name and the line under it.
type Byline struct {
	Author   string
	Subtitle string
	Verified bool
}

// BylineOf returns the author block for variants that carry one.
// The subtitle is the author title when set, otherwise the author type.
func BylineOf(it Item) (Byline, bool) {
	switch v := it.(type) {
	case Expert:
		if v.Author == "" {
			return Byline{}, false
		}
		return Byline{Author: v.Author, Subtitle: v.AuthorTitle}, true
	case UserGenerated:
		if v.Author == "" {
			return Byline{}, false
		}
		return Byline{Author: v.Author, Subtitle: v.AuthorType, Verified: v.Verified}, true
	}
	return Byline{}, false
}
