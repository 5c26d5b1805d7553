package dashboard

import (
	"context"
	"net/http"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	Snapshot(ctx context.Context) domain.Dashboard
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Snapshot godoc
//
//	@Summary		Landing page counters
//	@Description	Loans today, shelf availability, overdue returns and registered students. Figures degrade to zero rather than failing the page.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	domain.Dashboard
//	@Router			/api/dashboard [get]
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.dashboardService.Snapshot(r.Context()))
}
