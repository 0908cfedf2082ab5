package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListGroupMembers handles GET /api/groups/{manager|delivery-crew}/users.
func (s *Server) ListGroupMembers(group string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principalFrom(c)
		if err != nil {
			return err
		}

		query, err := queries.NewListGroupMembersQuery(p, group)
		if err != nil {
			return err
		}
		members, err := s.h.ListGroupMembers.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, membersFromView(members))
	}
}

// AddGroupMember handles POST /api/groups/{manager|delivery-crew}/users.
func (s *Server) AddGroupMember(group string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principalFrom(c)
		if err != nil {
			return err
		}

		var input MemberInput
		if err = c.Bind(&input); err != nil {
			return err
		}
		userID, err := bodyUUID("user_id", input.UserID)
		if err != nil {
			return err
		}

		cmd, err := commands.NewChangeGroupMembershipCommand(p, group, userID)
		if err != nil {
			return err
		}
		if err = s.h.AddGroupMember.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.NoContent(http.StatusCreated)
	}
}

// RemoveGroupMember handles DELETE /api/groups/{manager|delivery-crew}/users/:userId.
func (s *Server) RemoveGroupMember(group string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principalFrom(c)
		if err != nil {
			return err
		}
		userID, err := pathUUID(c, "userId")
		if err != nil {
			return err
		}

		cmd, err := commands.NewChangeGroupMembershipCommand(p, group, userID)
		if err != nil {
			return err
		}
		if err = s.h.RemoveGroupMember.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
