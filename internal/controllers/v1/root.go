package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
)

// RegisterRootRoutes registers the routes for the v1 API root.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Entries  string `json:"entries" example:"https://example.com/api/v1/entries"`
	GasFills string `json:"gasFills" example:"https://example.com/api/v1/gas-fills"`
	Debts    string `json:"debts" example:"https://example.com/api/v1/debts"`
	Holidays string `json:"holidays" example:"https://example.com/api/v1/holidays"`
	Report   string `json:"report" example:"https://example.com/api/v1/report"`
	Savings  string `json:"savings" example:"https://example.com/api/v1/savings"`
	Settings string `json:"settings" example:"https://example.com/api/v1/settings"`
	Backup   string `json:"backup" example:"https://example.com/api/v1/backup"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Entries:  url + "/entries",
			GasFills: url + "/gas-fills",
			Debts:    url + "/debts",
			Holidays: url + "/holidays",
			Report:   url + "/report",
			Savings:  url + "/savings",
			Settings: url + "/settings",
			Backup:   url + "/backup",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
