package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalikian/shopping-list-api/logger"
	"github.com/kalikian/shopping-list-api/models"
	"github.com/kalikian/shopping-list-api/service"
)

// ItemRoutes sets up the routes for item-related operations.
func ItemRoutes(router *gin.Engine, svc *service.ItemService, log *logger.Logger) {
	router.POST("/items", CreateItem(svc, log))

	listRoutes := router.Group("/lists/:list_id/items")
	{
		listRoutes.GET("", GetItemsByList(svc, log))
		listRoutes.GET("/:item_id", GetItem(svc, log))
		listRoutes.PATCH("/:item_id", UpdateItem(svc, log))
		listRoutes.PATCH("/:item_id/toggle", ToggleItemDone(svc, log))
		listRoutes.DELETE("/:item_id", DeleteItem(svc, log))
	}
}

// CreateItem handles the creation of a new item. The owning list ID travels
// in the body since the collection endpoint is not nested under /lists.
func CreateItem(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindingError(c, err)
			return
		}

		item, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			translateError(c, log, err)
			return
		}

		c.Header("Location", fmt.Sprintf("/lists/%d/items/%d", item.ListID, item.ID))
		c.JSON(http.StatusCreated, models.ToItemResponse(item))
	}
}

// GetItemsByList returns a list's items, newest first. ?done=false restricts
// to open items and ?q= filters by name substring.
func GetItemsByList(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, ok := pathID(c, "list_id")
		if !ok {
			return
		}

		onlyOpen := c.Query("done") == "false"
		items, err := svc.ListByList(c.Request.Context(), listID, onlyOpen, c.Query("q"))
		if err != nil {
			translateError(c, log, err)
			return
		}

		c.JSON(http.StatusOK, models.ToItemResponses(items))
	}
}

// GetItem retrieves a single item scoped to its list.
func GetItem(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, itemID, ok := pathScope(c)
		if !ok {
			return
		}

		item, err := svc.Get(c.Request.Context(), listID, itemID)
		if err != nil {
			translateError(c, log, err)
			return
		}

		c.JSON(http.StatusOK, models.ToItemResponse(item))
	}
}

// UpdateItem applies a partial update; only fields present in the body change.
func UpdateItem(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, itemID, ok := pathScope(c)
		if !ok {
			return
		}

		var patch models.UpdateItemRequest
		if err := c.ShouldBindJSON(&patch); err != nil {
			writeBindingError(c, err)
			return
		}

		item, err := svc.Update(c.Request.Context(), listID, itemID, patch)
		if err != nil {
			translateError(c, log, err)
			return
		}

		c.JSON(http.StatusOK, models.ToItemResponse(item))
	}
}

// ToggleItemDone flips an item's done flag.
func ToggleItemDone(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, itemID, ok := pathScope(c)
		if !ok {
			return
		}

		item, err := svc.ToggleDone(c.Request.Context(), listID, itemID)
		if err != nil {
			translateError(c, log, err)
			return
		}

		c.JSON(http.StatusOK, models.ToItemResponse(item))
	}
}

// DeleteItem removes an item scoped to its list.
func DeleteItem(svc *service.ItemService, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listID, itemID, ok := pathScope(c)
		if !ok {
			return
		}

		if err := svc.Delete(c.Request.Context(), listID, itemID); err != nil {
			translateError(c, log, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// translateError maps service failures onto wire-level statuses. Anything
// outside the typed taxonomy is logged and reported opaquely.
func translateError(c *gin.Context, log *logger.Logger, err error) {
	var invalid *service.InvalidArgumentError
	switch {
	case errors.As(err, &invalid):
		writeError(c, http.StatusBadRequest, invalid.Msg, nil)
	case errors.Is(err, service.ErrNotFound):
		writeError(c, http.StatusNotFound, "Item not found", nil)
	default:
		log.Error("request failed", "path", c.Request.URL.Path, "error", err)
		writeError(c, http.StatusInternalServerError, "Unexpected error", nil)
	}
}

func pathID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid "+param+" path parameter", nil)
		return 0, false
	}
	return uint(id), true
}

func pathScope(c *gin.Context) (listID, itemID uint, ok bool) {
	listID, ok = pathID(c, "list_id")
	if !ok {
		return 0, 0, false
	}
	itemID, ok = pathID(c, "item_id")
	if !ok {
		return 0, 0, false
	}
	return listID, itemID, true
}
