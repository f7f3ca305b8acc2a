package fiber

import "conversions-adapter/internal/outcomes/core/domain"

type StatsGroupResponse struct {
	Key        string `json:"key" example:"consent_not_granted"`
	Total      int64  `json:"total"`
	Translated int64  `json:"translated"`
	Rejected   int64  `json:"rejected"`
}

type StatsResponse struct {
	EventName  string               `json:"event_name" example:"PAGE_VIEW"`
	From       int64                `json:"from"`
	To         int64                `json:"to"`
	Total      int64                `json:"total"`
	Translated int64                `json:"translated"`
	Rejected   int64                `json:"rejected"`
	GroupBy    string               `json:"group_by,omitempty"`
	Groups     []StatsGroupResponse `json:"groups,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}

func toStatsResponse(s *domain.OutcomeStats) StatsResponse {
	resp := StatsResponse{
		EventName:  s.EventName,
		From:       s.From,
		To:         s.To,
		Total:      s.Total,
		Translated: s.Translated,
		Rejected:   s.Rejected,
		GroupBy:    s.GroupBy,
		Groups:     make([]StatsGroupResponse, 0, len(s.Groups)),
	}
	for _, g := range s.Groups {
		resp.Groups = append(resp.Groups, StatsGroupResponse{
			Key:        g.Key,
			Total:      g.Total,
			Translated: g.Translated,
			Rejected:   g.Rejected,
		})
	}
	return resp
}
