package news

import "time"

// Seed returns the fixed feed shown after the simulated load, in display order:
// expert article, live event, poll, user-generated article.
func Seed(now time.Time) []Item {
	return []Item{
		Expert{
			Meta: Meta{
				Title:       "Quantum Computing Breakthrough: New Record in Qubit Stability",
				Description: "Scientists achieve unprecedented 10-minute coherence time in superconducting qubits, marking a major milestone in quantum computing.",
				PublishedAt: now,
				Category:    "Emerging Tech",
			},
			Author:      "Dr. Sarah Chen",
			AuthorTitle: "Quantum Computing Researcher",
			ReadTime:    "5 min read",
			Engagement:  &Engagement{Comments: 42, Shares: 156},
		},
		Live{
			Meta: Meta{
				Title:       "LIVE: AI Summit 2024",
				Description: "Live coverage of the biggest AI conference. Currently streaming: 'The Future of Large Language Models' panel discussion.",
				PublishedAt: now.Add(-1 * time.Hour),
				Category:    "Live Event",
			},
			Viewers: 1234,
			Status:  "LIVE NOW",
		},
		Poll{
			Meta: Meta{
				Title:       "Weekly Poll: Will Quantum Computers Break Current Encryption by 2025?",
				Description: "Join the discussion and cast your vote on this crucial cybersecurity question.",
				PublishedAt: now.Add(-2 * time.Hour),
				Category:    "Interactive",
			},
			TotalVotes: 892,
		},
		UserGenerated{
			Meta: Meta{
				Title:       "Community Spotlight: Building a Sustainable Tech Future",
				Description: "User-submitted article by Maria Garcia on how tech companies are adopting green practices.",
				PublishedAt: now.Add(-3 * time.Hour),
				Category:    "Community",
			},
			Author:     "Maria Garcia",
			AuthorType: "Community Contributor",
			Verified:   true,
		},
	}
}
