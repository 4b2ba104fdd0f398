package tmdb

import "cliptrace/match-api/model"

// No streaming availability provider is integrated, so platform listings are
// made up on every call: 2-4 entries picked at random from a fixed set. Demo
// behavior, kept on purpose.

func allPlatforms() model.PlatformList {
	return model.PlatformList{
		{Name: "Netflix", Type: "subscription", Available: true},
		{Name: "Prime Video", Type: "rental", Price: strptr("Rent $3.99 | Buy $12.99"), Available: true},
		{Name: "Hulu", Type: "subscription", Available: true},
		{Name: "Disney+", Type: "subscription", Available: true},
		{Name: "HBO Max", Type: "subscription", Available: true},
		{Name: "Apple TV+", Type: "rental", Price: strptr("Rent $4.99 | Buy $14.99"), Available: true},
	}
}

func (c *Client) mockPlatforms() model.PlatformList {
	platforms := allPlatforms()

	c.mu.Lock()
	c.rng.Shuffle(len(platforms), func(i, j int) {
		platforms[i], platforms[j] = platforms[j], platforms[i]
	})
	n := 2 + c.rng.Intn(3)
	c.mu.Unlock()

	return platforms[:n]
}

func strptr(s string) *string {
	return &s
}
