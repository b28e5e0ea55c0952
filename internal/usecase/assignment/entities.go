package assignment

import "leadcrm-backend/internal/domain/pipeline"

type AssignInput struct {
	LeadIDs    []uint64
	AssignedTo uint64
	// AssignedBy defaults to the acting user.
	AssignedBy uint64
	Actor      pipeline.Actor
}

type AssignmentDTO struct {
	LeadIDs        []uint64 `json:"lead_ids"`
	AssignedTo     uint64   `json:"assigned_to"`
	AssignedToName string   `json:"assigned_to_name"`
	AssignedBy     uint64   `json:"assigned_by"`
	AssignedByName string   `json:"assigned_by_name"`
	Status         string   `json:"status"`
}
