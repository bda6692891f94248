package chart

import "time"

// Row is one labelled lane of the timeline.
type Row struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Bar is one task interval drawn on the lane at index Row.
type Bar struct {
	Row   int       `json:"row"`
	Task  string    `json:"task"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

// Timeline is a renderer-agnostic horizontal timeline.
// Rows are ordered top to bottom, earliest first appearance on top.
type Timeline struct {
	Title string    `json:"title"`
	Rows  []Row     `json:"rows"`
	Bars  []Bar     `json:"bars"`
	Min   time.Time `json:"min"`
	Max   time.Time `json:"max"`
	Empty bool      `json:"empty"`
}
