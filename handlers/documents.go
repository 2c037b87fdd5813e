package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webfolio/portfolio-api/internal/docid"
	"github.com/webfolio/portfolio-api/internal/documents"
	"github.com/webfolio/portfolio-api/pkg/logger"
	"github.com/webfolio/portfolio-api/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
)

// vocab fixes one collection's routes and response wording. The frontend
// depends on the exact keys and messages, quirks included: the contact form
// answer reuses the blogId key, and blog delete lives at the singular /blog.
type vocab struct {
	collection string // metrics label
	createPath string
	listPath   string
	getPath    string // empty: no read-one route
	updatePath string // empty: no update route
	deletePath string // empty: no delete route
	idKey      string
	createdMsg string
	invalidID  string
	notFound   string
	updatedMsg string
	updateKey  string
	deletedMsg string
}

// Documents serves one document collection with its response vocabulary.
// The same handler backs projects, blogs and contact messages; only the
// vocabulary differs.
type Documents struct {
	svc *documents.Service
	v   vocab
}

func NewProjects(svc *documents.Service) *Documents {
	return &Documents{svc: svc, v: vocab{
		collection: "projects",
		createPath: "/create-project",
		listPath:   "/projects",
		getPath:    "/projects/:id",
		updatePath: "/update-project/:id",
		deletePath: "/projects/:id",
		idKey:      "projectId",
		createdMsg: "Project created successfully!",
		invalidID:  "Invalid project ID",
		notFound:   "Project not found",
		updatedMsg: "Project updated successfully",
		updateKey:  "project",
		deletedMsg: "Project deleted successfully",
	}}
}

func NewBlogs(svc *documents.Service) *Documents {
	return &Documents{svc: svc, v: vocab{
		collection: "blogs",
		createPath: "/create-blog",
		listPath:   "/blogs",
		getPath:    "/blogs/:id",
		updatePath: "/update-blog/:id",
		deletePath: "/blog/:id",
		idKey:      "blogId",
		createdMsg: "Blog created successfully!",
		invalidID:  "Invalid blog ID",
		notFound:   "Blog not found",
		updatedMsg: "Blog updated successfully",
		updateKey:  "blog",
		deletedMsg: "Blog deleted successfully",
	}}
}

// NewMessages covers the contact form: append + list only.
func NewMessages(svc *documents.Service) *Documents {
	return &Documents{svc: svc, v: vocab{
		collection: "messages",
		createPath: "/save-contact",
		listPath:   "/messages",
		idKey:      "blogId",
		createdMsg: "Form submitted successfully",
	}}
}

// Register wires the collection's routes into the group. Any guard middleware
// is applied to the mutating routes only; reads stay public.
func (h *Documents) Register(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	rg.POST(h.v.createPath, chain(guard, h.Create)...)
	rg.GET(h.v.listPath, h.List)
	if h.v.getPath != "" {
		rg.GET(h.v.getPath, h.Get)
	}
	if h.v.updatePath != "" {
		rg.PUT(h.v.updatePath, chain(guard, h.Update)...)
	}
	if h.v.deletePath != "" {
		rg.DELETE(h.v.deletePath, chain(guard, h.Delete)...)
	}
}

func chain(guard []gin.HandlerFunc, last gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guard)+1)
	out = append(out, guard...)
	return append(out, last)
}

// Create accepts an arbitrary JSON object, stamps a timestamp and inserts it
func (h *Documents) Create(c *gin.Context) {
	var payload bson.M
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}
	id, ts, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		logger.Errorf("create %s failed: %v", h.v.collection, err)
		metrics.DocumentOps.WithLabelValues(h.v.collection, "create", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	metrics.DocumentOps.WithLabelValues(h.v.collection, "create", "ok").Inc()
	c.JSON(http.StatusCreated, gin.H{"message": h.v.createdMsg, h.v.idKey: id.Hex(), "timestamp": ts})
}

// List returns every document in the collection, store order, no pagination
func (h *Documents) List(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("list %s failed: %v", h.v.collection, err)
		metrics.DocumentOps.WithLabelValues(h.v.collection, "list", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	metrics.DocumentOps.WithLabelValues(h.v.collection, "list", "ok").Inc()
	c.JSON(http.StatusOK, docs)
}

func (h *Documents) Get(c *gin.Context) {
	id, err := docid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.v.invalidID})
		return
	}
	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": h.v.notFound})
			return
		}
		logger.Errorf("get %s failed: %v", h.v.collection, err)
		metrics.DocumentOps.WithLabelValues(h.v.collection, "get", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	metrics.DocumentOps.WithLabelValues(h.v.collection, "get", "ok").Inc()
	c.JSON(http.StatusOK, doc)
}

// Update merges the supplied fields into the document and returns the result
func (h *Documents) Update(c *gin.Context) {
	id, err := docid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.v.invalidID})
		return
	}
	var payload bson.M
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON body"})
		return
	}
	doc, err := h.svc.Update(c.Request.Context(), id, payload)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": h.v.notFound})
			return
		}
		logger.Errorf("update %s failed: %v", h.v.collection, err)
		metrics.DocumentOps.WithLabelValues(h.v.collection, "update", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	metrics.DocumentOps.WithLabelValues(h.v.collection, "update", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": h.v.updatedMsg, h.v.updateKey: doc})
}

func (h *Documents) Delete(c *gin.Context) {
	id, err := docid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": h.v.invalidID})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": h.v.notFound})
			return
		}
		logger.Errorf("delete %s failed: %v", h.v.collection, err)
		metrics.DocumentOps.WithLabelValues(h.v.collection, "delete", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	metrics.DocumentOps.WithLabelValues(h.v.collection, "delete", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": h.v.deletedMsg})
}
