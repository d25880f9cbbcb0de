package controllers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type FrontendController struct {
	Log             *zap.Logger
	FrontendStorage contracts.FrontendStorage
	InternalConfig  *config.InternalConfig
}

func NewFrontendController(logger *zap.Logger, frontendStorage contracts.FrontendStorage, internalConfig *config.InternalConfig) *FrontendController {
	return &FrontendController{
		Log:             logger,
		FrontendStorage: frontendStorage,
		InternalConfig:  internalConfig,
	}
}

// Serve returns the requested static asset when it exists and the entry
// document otherwise, so client side routes survive a page reload.
func (ctrl *FrontendController) Serve(w http.ResponseWriter, r *http.Request) {
	if (r.Method != http.MethodGet && r.Method != http.MethodHead) || strings.HasPrefix(r.URL.Path, constvars.APIPathPrefix) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFrontendObjectNotFound(nil, r.URL.Path))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.InternalConfig.App.RequestTimeout())
	defer cancel()

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name != "" && name != constvars.FrontendEntryDocument {
		object, err := ctrl.FrontendStorage.Open(ctx, name)
		if err == nil {
			serveObject(w, r, object)
			return
		}
		if !isNotFound(err) {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	object, err := ctrl.FrontendStorage.Open(ctx, constvars.FrontendEntryDocument)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SetNoCacheHeaders(w)
	serveObject(w, r, object)
}

func serveObject(w http.ResponseWriter, r *http.Request, object *models.FrontendObject) {
	w.Header().Set(constvars.HeaderContentType, object.ContentType)
	http.ServeContent(w, r, object.Name, object.ModTime, bytes.NewReader(object.Body))
}

func isNotFound(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound
}
