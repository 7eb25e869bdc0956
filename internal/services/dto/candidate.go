package dto

type CandidateStatusRequest struct {
	Status string `json:"status" validate:"required,is-candidate-status"`
}

func (CandidateStatusRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"status": "Unknown candidate status",
	}
}

// CVLinkResponse carries a short-lived link to a candidate's CV.
type CVLinkResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
