package dto

type ReduceInput struct {
	Threshold float64
}

type NodeOutput struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Weight int    `json:"weight"`
}

type LinkOutput struct {
	Source     int     `json:"-"`
	Target     int     `json:"-"`
	SourceName string  `json:"source"`
	TargetName string  `json:"target"`
	Weight     float64 `json:"weight"`
}

type GraphOutput struct {
	Title     string       `json:"title"`
	Subtitle  string       `json:"subtitle"`
	Threshold float64      `json:"threshold"`
	MaxWeight int          `json:"max_weight"`
	Nodes     []NodeOutput `json:"nodes"`
	Links     []LinkOutput `json:"links"`
}
