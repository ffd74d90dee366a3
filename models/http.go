package models

// AmountRequest carries a decimal SOL amount, e.g. "0.1".
type AmountRequest struct {
	Amount string `json:"amount"`
}

// CreateBankRequest names the bank account to create.
type CreateBankRequest struct {
	Name string `json:"name"`
}

// OperationResponse is the gateway's answer to a submitted operation.
type OperationResponse struct {
	Status    OperationStatus `json:"status"`
	Signature string          `json:"signature,omitempty"`
	Message   string          `json:"message"`
	// Recovered is set when a deposit initialized the vault instead.
	Recovered bool `json:"recovered,omitempty"`
}

// NewOperationResponse converts a result for the wire.
func NewOperationResponse(result OperationResult) OperationResponse {
	resp := OperationResponse{
		Status:    result.Status,
		Message:   result.Message,
		Recovered: result.Recovered,
	}
	if !result.Signature.IsZero() {
		resp.Signature = result.Signature.String()
	}
	return resp
}

// ListAccountsRequest asks for the connected owner's accounts; Refresh
// bypasses the cache.
type ListAccountsRequest struct {
	Refresh bool `json:"refresh"`
}
