package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API reply.
type Response struct {
	Code int    `json:"code"` // 0 on success
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// PageData wraps a paginated list.
type PageData struct {
	List     any   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Response{
		Code: -1,
		Msg:  msg,
		Data: nil,
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Code: -1, Msg: msg})
}
