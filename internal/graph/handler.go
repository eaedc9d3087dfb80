package graph

import (
	"net/http"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/webutil"

	graphql "github.com/graph-gophers/graphql-go"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Extensions    map[string]interface{} `json:"extensions"`
}

// Handler は POST /graphql を受け付け、スキーマを実行する
type Handler struct {
	schema *graphql.Schema
}

func NewHandler(schema *graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		webutil.RespondWithJSON(w, http.StatusMethodNotAllowed, model.APIErrorResponse{
			Error: model.ErrorDetail{Code: "METHOD_NOT_ALLOWED", Message: "POSTメソッドのみ利用できます。"},
		})
		return
	}

	var req graphqlRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if req.Query == "" {
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "queryは必須項目です。", "query", model.ErrInvalidInput))
		return
	}

	resp := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		logger.Info("GraphQL operation returned errors", "operation", req.OperationName, "errors", len(resp.Errors))
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
