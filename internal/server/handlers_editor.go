package server

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/emurenMRz/mailpanel/internal/editorgate"
	"github.com/emurenMRz/mailpanel/internal/errortree"
)

// editorErrorsRequest is what the JSON editor widget posts: its UI
// state plus the raw validation error tree from the schema validator.
// Errors stays raw so child order follows the document, not Go map
// order.
type editorErrorsRequest struct {
	Modified bool            `json:"modified"`
	Required bool            `json:"required"`
	HasValue bool            `json:"hasValue"`
	Errors   json.RawMessage `json:"errors"`
}

type editorErrorsResponse struct {
	HasErrors bool   `json:"hasErrors"`
	Message   string `json:"message,omitempty"`
	Display   bool   `json:"display"`
}

func (s *Server) handleEditorErrors(w http.ResponseWriter, r *http.Request) {
	var req editorErrorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	node := errortree.FromJSON(req.Errors)

	resp := editorErrorsResponse{HasErrors: !node.Empty()}
	if resp.HasErrors {
		st := editorgate.State{
			Modified: req.Modified,
			Required: req.Required,
			HasValue: req.HasValue,
		}
		resp.Message, resp.Display = editorgate.VisibleNode(st, node)
	}

	s.writeJSON(w, resp)
}
