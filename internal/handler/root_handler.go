package handler

import "net/http"

const landingPagePath = "/static/index.html"

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Root godoc
// @Summary Redirect to the landing page
// @Tags Static
// @Success 307 "Redirect to /static/index.html"
// @Router / [get]
func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, landingPagePath, http.StatusTemporaryRedirect)
}
