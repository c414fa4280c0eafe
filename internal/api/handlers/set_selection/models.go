package set_selection

// SetSelectionRequest HTTP request model.
// Либо meetingId (открыть существующую бронь в редакторе),
// либо start/end (черновик нового слота).
type SetSelectionRequest struct {
	MeetingID string `json:"meetingId,omitempty"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// DraftSlotResponse черновик слота для формы создания брони
type DraftSlotResponse struct {
	Start string `json:"start"` // RFC 3339
	End   string `json:"end"`   // RFC 3339
}
