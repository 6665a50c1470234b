package model

// MessageBody is the JSON payload published for every generated message
type MessageBody struct {
	Identifier string `json:"identifier"`
}

// SeedRequest carries the already validated CLI inputs
type SeedRequest struct {
	Queue               string
	NumMessages         int
	CollisionPercentage int
}

// SeedSummary reports what a seeding run did
type SeedSummary struct {
	Messages      int `json:"messages"`
	Batches       int `json:"batches"`
	Random        int `json:"random"`
	Deterministic int `json:"deterministic"`
	Failed        int `json:"failed"`
}
