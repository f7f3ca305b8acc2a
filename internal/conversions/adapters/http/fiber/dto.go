package fiber

import "conversions-adapter/internal/conversions/core/domain"

// TranslateRequest is the host's event envelope
// @Description Event plus destination settings
type TranslateRequest struct {
	Event *domain.Event `json:"event"`
	// Settings is a list of [key, value] pairs
	Settings domain.Dict `json:"settings" swaggertype:"array,object" example:"[[\"access-token\",\"abc\"],[\"destination-id\",\"pixel-1\"]]"`
}

type HeaderResponse struct {
	Name  string `json:"name" example:"content-type"`
	Value string `json:"value" example:"application/json"`
}

type RequestDescriptorResponse struct {
	Method               string           `json:"method" example:"POST"`
	URL                  string           `json:"url"`
	Headers              []HeaderResponse `json:"headers"`
	Body                 string           `json:"body"`
	ForwardClientHeaders bool             `json:"forward_client_headers"`
}

type DeliveryResponse struct {
	StatusCode int    `json:"status_code" example:"200"`
	Body       string `json:"body"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"consent_not_granted"`
	Message string `json:"message" example:"consent is not granted"`
}

func toDescriptorResponse(d *domain.RequestDescriptor) RequestDescriptorResponse {
	resp := RequestDescriptorResponse{
		Method:               d.Method,
		URL:                  d.URL,
		Headers:              make([]HeaderResponse, 0, len(d.Headers)),
		Body:                 d.Body,
		ForwardClientHeaders: d.ForwardClientHeaders,
	}
	for _, h := range d.Headers {
		resp.Headers = append(resp.Headers, HeaderResponse{Name: h.Name, Value: h.Value})
	}
	return resp
}
