package complete_contract

// CompleteContractRequest HTTP request model. The notification key is
// optional; when present the completion is announced through the
// messaging collaborator.
type CompleteContractRequest struct {
	NotificationKey *string `json:"notificationKey,omitempty"`
}
