package cancel_contract

// CancelContractRequest HTTP request model
type CancelContractRequest struct {
	Motivo *string `json:"motivo,omitempty"`
}
