package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/backup"
	"github.com/spendwise/backend/internal/httputil"
)

// RegisterBackupRoutes registers the routes for backups with
// the RouterGroup that is passed.
func RegisterBackupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBackup)
	r.GET("", GetBackup)
	r.POST("", ImportBackup)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backup
// @Success		204
// @Router			/v1/backup [options]
func OptionsBackup(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Export backup
// @Description	Exports the full database as a backup blob
// @Tags			Backup
// @Produce		json
// @Success		200	{object}	backup.Blob
// @Failure		500	{object}	httpError
// @Router			/v1/backup [get]
func GetBackup(c *gin.Context) {
	blob, err := backup.Export()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, blob)
}

// @Summary		Import backup
// @Description	Replaces the full database with the backup blob. All existing data is deleted, which is why the request must be confirmed with the "confirm=yes" query parameter.
// @Tags			Backup
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string		true	"Must be the string \"yes\""
// @Param			backup	body		backup.Blob	true	"The backup blob"
// @Router			/v1/backup [post]
func ImportBackup(c *gin.Context) {
	if c.Query("confirm") != "yes" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errBackupConfirmation.Error(),
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidBody.Error(),
		})
		return
	}

	blob, err := backup.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	err = backup.Import(blob)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
