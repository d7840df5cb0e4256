package web

import (
	"strings"
	"time"

	"pmdsite/app/service/content"
	"pmdsite/app/service/viewstate"

	"github.com/gofiber/fiber/v2"
)

type healthResponse struct {
	OK      bool   `json:"ok"`
	Started string `json:"started"`
}

type languagesResponse struct {
	Languages []content.Language `json:"languages"`
	Default   content.Language   `json:"default"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type transitionRequest struct {
	State    *viewstate.State `json:"state"`
	Argument string           `json:"argument"`
}

type transitionResponse struct {
	State viewstate.State `json:"state"`
}

func (s *Service) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{
		OK:      true,
		Started: s.startedAt.Format(time.RFC3339),
	})
}

func (s *Service) handleLanguages(c *fiber.Ctx) error {
	return c.JSON(languagesResponse{
		Languages: s.contentSvc.Languages(),
		Default:   content.DefaultLanguage,
	})
}

func (s *Service) handleContent(c *fiber.Ctx) error {
	table, err := s.contentSvc.Get(content.Language(c.Params("lang")))
	if err != nil {
		return err
	}

	return c.JSON(table)
}

func (s *Service) handleTeamMember(c *fiber.Ctx) error {
	member, err := s.contentSvc.TeamMember(content.Language(c.Params("lang")), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(member)
}

func (s *Service) handleProject(c *fiber.Ctx) error {
	project, err := s.contentSvc.Project(content.Language(c.Params("lang")), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(project)
}

// handleChat answers one utterance after the configured typing delay.
func (s *Service) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	req.Message = strings.TrimSpace(req.Message)
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	reply := s.responderSvc.Reply(req.Message)

	if delay := s.cfg.Chat.ReplyDelay; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-c.Context().Done():
			return fiber.NewError(fiber.StatusServiceUnavailable, "server is shutting down")
		}
	}

	return c.JSON(chatResponse{Reply: reply})
}

func (s *Service) handleInitialState(c *fiber.Ctx) error {
	return c.JSON(transitionResponse{State: viewstate.Initial()})
}

func (s *Service) handleTransition(c *fiber.Ctx) error {
	var req transitionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}

	state := viewstate.Initial()
	if req.State != nil {
		state = *req.State
	}

	next, err := s.viewstateSvc.Apply(state, c.Params("action"), req.Argument)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(transitionResponse{State: next})
}
