package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindcase/mindcase/internal/server/services"
)

func (s *HTTPServer) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req services.SendInput
	if err := decode(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	reply, err := s.svc.Chat.Send(r.Context(), userIDFrom(r.Context()), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, reply)
}

func (s *HTTPServer) newChat(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Chat.New(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, c)
}

func (s *HTTPServer) listChats(w http.ResponseWriter, r *http.Request) {
	chats, err := s.svc.Chat.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, chats)
}

func (s *HTTPServer) getChat(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Chat.Get(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, http.StatusOK, c)
}

func (s *HTTPServer) deleteChat(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Chat.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeMessage(w, "chat deleted")
}

func (s *HTTPServer) clearChat(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Chat.Clear(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	writeMessage(w, "chat cleared")
}
