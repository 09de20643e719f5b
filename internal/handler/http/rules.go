package http

import (
	"net/http"

	"github.com/simpeg-app/tukin-backend-go/internal/domain/deduction"
	"github.com/simpeg-app/tukin-backend-go/internal/handler/http/response"
)

type DeductionRuleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type deductionRuleHandlerImpl struct {
	catalogService deduction.RuleCatalogService
}

func NewDeductionRuleHandler(catalogService deduction.RuleCatalogService) DeductionRuleHandler {
	return &deductionRuleHandlerImpl{
		catalogService: catalogService,
	}
}

// List handles GET /deduction-rules
func (h *deductionRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.catalogService.ListActiveRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}
