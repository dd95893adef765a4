package api

import (
	"net/http"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/feature-dashboard/internal/theme"
	"github.com/rs/zerolog/log"
)

type updateThemeRequest struct {
	Theme string `json:"theme" form:"theme"`
}

func (server *Server) themeResponse(ctx *gin.Context) ThemeResponse {
	current := server.themeStore.Get()
	return ThemeResponse{
		Theme:    string(current),
		Resolved: string(theme.Resolve(current, prefersDark(ctx))),
	}
}

//	@Summary		Get the theme
//	@Tags			theme
//	@Produce		json
//	@Success		200	{object}	ThemeResponse
//	@Router			/theme [get]
func (server *Server) getTheme(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, server.themeResponse(ctx))
}

//	@Summary		Set the theme
//	@Description	theme is one of light, dark, system, or "toggle" to switch between light and dark.
//	@Tags			theme
//	@Accept			json
//	@Produce		json
//	@Param			request	body		updateThemeRequest	true	"Theme"
//	@Success		200		{object}	ThemeResponse
//	@Failure		400		{object}	FailedValidationResponse
//	@Router			/theme [put]
func (server *Server) updateTheme(ctx *gin.Context) {
	req := new(updateThemeRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	
	if err := server.applyTheme(ctx, req.Theme); err != nil {
		ctx.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("theme", err)}))
		return
	}
	
	ctx.JSON(http.StatusOK, server.themeResponse(ctx))
}

func (server *Server) applyTheme(ctx *gin.Context, value string) error {
	if value == "toggle" {
		server.themeStore.Toggle(prefersDark(ctx))
		return nil
	}
	
	t, err := theme.Parse(value)
	if err != nil {
		return err
	}
	return server.themeStore.Set(t)
}
