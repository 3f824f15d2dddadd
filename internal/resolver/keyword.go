// Package resolver contains the local mock backends of the assistant
// sessions. The network backends live in the weather and predict packages.
package resolver

import (
	"context"
	"strings"
)

// FollowUp is appended to every assistant reply.
const FollowUp = " Would you like more detailed information?"

// DefaultReply is used when no keyword matches.
const DefaultReply = "I recommend consulting with local agricultural experts for detailed guidance specific to your region."

// KeywordReply maps a lowercase keyword to its canned answer.
type KeywordReply struct {
	Keyword string
	Reply   string
}

// DefaultKeywords is the fixed table, in match order.
var DefaultKeywords = []KeywordReply{
	{Keyword: "pest", Reply: "For pest control, consider using neem oil spray or introduce beneficial insects like ladybugs."},
	{Keyword: "crops", Reply: "Best crops for Indian climate: Wheat, Rice, Cotton, and Sugarcane. Consider soil type and season."},
	{Keyword: "soil", Reply: "Improve soil health by crop rotation, adding organic compost, and maintaining proper pH levels."},
	{Keyword: "irrigation", Reply: "Drip irrigation saves water and increases efficiency. Consider smart irrigation systems."},
}

// Keyword answers chat questions by substring lookup. The first table entry
// whose keyword occurs in the lowercased question wins.
type Keyword struct {
	table        []KeywordReply
	defaultReply string
}

func NewKeyword(table []KeywordReply, defaultReply string) *Keyword {
	return &Keyword{table: table, defaultReply: defaultReply}
}

// NewDefaultKeyword returns the resolver with the built-in table.
func NewDefaultKeyword() *Keyword {
	return NewKeyword(DefaultKeywords, DefaultReply)
}

// Reply is the deterministic lookup behind Resolve.
func (k *Keyword) Reply(question string) string {
	lower := strings.ToLower(question)
	for _, entry := range k.table {
		if strings.Contains(lower, entry.Keyword) {
			return entry.Reply + FollowUp
		}
	}
	return k.defaultReply + FollowUp
}

func (k *Keyword) Resolve(_ context.Context, question string) (string, error) {
	return k.Reply(question), nil
}
