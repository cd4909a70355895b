package dto

import graphdto "wordgraph/internal/modules/graph/dto"

type StartInput struct {
	Graph     graphdto.GraphOutput
	Width     float64
	Height    float64
	MarginTop float64
	Distance  string
	Seed      uint64
}

type RunInput struct {
	Start    StartInput
	MaxTicks int
}

type NodeFrame struct {
	Name    string  `json:"name"`
	Weight  int     `json:"weight"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Pinned  bool    `json:"pinned,omitempty"`
	Opacity float64 `json:"-"`
	Focused bool    `json:"-"`
}

type LinkFrame struct {
	Source  int     `json:"source"`
	Target  int     `json:"target"`
	Weight  float64 `json:"weight"`
	Opacity float64 `json:"-"`
}

type FrameOutput struct {
	Tick    int         `json:"tick"`
	Alpha   float64     `json:"alpha"`
	Running bool        `json:"running"`
	Focus   int         `json:"-"`
	Nodes   []NodeFrame `json:"nodes"`
	Links   []LinkFrame `json:"links"`
}
