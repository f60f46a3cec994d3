package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type taskRequest struct {
	TaskName string `json:"taskname"`
	Status   string `json:"status"`
}

// TaskView is the wire form of a task.
type TaskView struct {
	TaskID   string `json:"task_id"`
	TaskName string `json:"taskname"`
	Status   string `json:"status"`
	UserID   string `json:"user_id"`
}

type userView struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Tasks    []string `json:"tasks"`
}

func newTaskView(t *models.Task) TaskView {
	return TaskView{TaskID: t.ID, TaskName: t.TaskName, Status: t.Status, UserID: t.UserID}
}

func (s *HTTPServer) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrorBadRequest.Error() + ": invalid request body"})
		return false
	}
	return true
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if !s.bind(c, &req) {
		return
	}

	u, err := s.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user registered", "id": u.ID})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if !s.bind(c, &req) {
		return
	}

	res, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "login successful", "user_id": res.UserID, "token": res.Token})
}

func (s *HTTPServer) profile(c *gin.Context, claims *auth.Claims) {
	u, err := s.accounts.Profile(c.Request.Context(), claims)
	if err != nil {
		s.writeError(c, err)
		return
	}

	tasks := u.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	c.JSON(http.StatusOK, userView{ID: u.ID, Username: u.UserName, Email: u.Email, Tasks: tasks})
}

func (s *HTTPServer) createTask(c *gin.Context, claims *auth.Claims) {
	var req taskRequest
	if !s.bind(c, &req) {
		return
	}

	t, err := s.tasks.Create(c.Request.Context(), claims, req.TaskName, req.Status)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskView(t))
}

func (s *HTTPServer) updateTask(c *gin.Context, claims *auth.Claims) {
	var req taskRequest
	if !s.bind(c, &req) {
		return
	}

	t, err := s.tasks.Update(c.Request.Context(), claims, c.Param("task_id"), req.TaskName, req.Status)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskView(t))
}

func (s *HTTPServer) listTasks(c *gin.Context, claims *auth.Claims) {
	list, err := s.tasks.ListForUser(c.Request.Context(), claims)
	if err != nil {
		s.writeError(c, err)
		return
	}

	views := make([]TaskView, 0, len(list))
	for _, t := range list {
		views = append(views, newTaskView(t))
	}
	c.JSON(http.StatusOK, views)
}
