package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/service"
)

// HeaderNextPageToken — курсор следующей страницы ленты; пустой на последней странице.
const HeaderNextPageToken = "X-Next-Page-Token"

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in createPostRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), service.CreatePostInput{
		User:         in.User,
		Role:         models.Role(in.Role),
		Initial:      in.Initial,
		Color:        in.Color,
		UserAvatar:   in.UserAvatar,
		Text:         in.Text,
		MediaType:    models.MediaType(in.MediaType),
		MediaSrc:     in.MediaSrc,
		MarketStatus: models.MarketStatus(in.MarketStatus),
		SharedPostID: in.SharedPost,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// ListPosts отдаёт массив постов; курсор следующей страницы — в заголовке.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	var params models.ListParams

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		params.PageSize = int32(n)
	}

	params.PageToken = r.URL.Query().Get("page_token")

	page, err := h.svc.ListPosts(r.Context(), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items := page.Items
	if items == nil {
		items = []models.Post{}
	}

	if page.NextPageToken != "" {
		w.Header().Set(HeaderNextPageToken, page.NextPageToken)
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) ReactPost(w http.ResponseWriter, r *http.Request) {
	var in reactRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.ReactPost(r.Context(), chi.URLParam(r, "id"), in.UserID, in.Type)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	var in commentRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.AddComment(r.Context(), chi.URLParam(r, "id"), service.NodeInput{
		User:       in.User,
		UserAvatar: in.UserAvatar,
		Text:       in.Text,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// AddReply — ответ в обсуждении корня commentId; replyToId адресует любой узел этого дерева.
func (h *Handlers) AddReply(w http.ResponseWriter, r *http.Request) {
	var in replyRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.AddReply(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "commentId"),
		in.ReplyToID,
		service.NodeInput{User: in.User, UserAvatar: in.UserAvatar, Text: in.Text},
	)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) ReactComment(w http.ResponseWriter, r *http.Request) {
	var in reactRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.ReactComment(r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "commentId"),
		in.UserID,
		in.Type,
	)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handlers) SharePost(w http.ResponseWriter, r *http.Request) {
	var in shareRequest
	if err := h.decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.svc.SharePost(r.Context(), chi.URLParam(r, "id"), service.ShareInput{
		User:       in.User,
		Initial:    in.Initial,
		Color:      in.Color,
		UserAvatar: in.UserAvatar,
		Text:       in.Text,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	var in ownerRequest
	if err := decodeOptional(r, &in); err != nil {
		apierrors.WriteError(w, r, invalidArgument(err))
		return
	}

	err := h.svc.DeletePost(r.Context(), chi.URLParam(r, "id"), requesterFrom(r, in.User, in.UserID))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Post deleted successfully"})
}
