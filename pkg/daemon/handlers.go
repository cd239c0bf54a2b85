package daemon

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/powerinfo"
	"github.com/charlie0129/battinfo/pkg/types"
	"github.com/charlie0129/battinfo/pkg/version"
)

func (s *Server) getLevel(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.acc.Snapshot(c.Request.Context()).EncodeLevel())
}

func (s *Server) getCharging(c *gin.Context) {
	charging := s.acc.Snapshot(c.Request.Context()).EncodeCharging()
	c.IndentedJSON(http.StatusOK, charging == powerinfo.ChargingTrue)
}

func (s *Server) getState(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.acc.Snapshot(c.Request.Context()).EncodeState())
}

func (s *Server) getSnapshot(c *gin.Context) {
	snap := s.acc.Snapshot(c.Request.Context())
	c.IndentedJSON(http.StatusOK, types.NewSnapshot(snap, s.acc.Source().Name()))
}

func (s *Server) getBatteryInfo(c *gin.Context) {
	snap := s.acc.Snapshot(c.Request.Context())

	if !snap.Present || snap.Battery == nil {
		err := errors.New("no battery details available")
		if snap.LevelErr != nil {
			err = snap.LevelErr
		}
		logrus.Errorf("getBatteryInfo failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, snap.Battery)
}

func (s *Server) callMethod(c *gin.Context) {
	call := channel.Call{Method: c.Param("method")}

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&call.Arguments); err != nil {
			c.IndentedJSON(http.StatusBadRequest, err.Error())
			_ = c.AbortWithError(http.StatusBadRequest, err)
			return
		}
	}

	res := s.channel.Handle(c.Request.Context(), call)
	if res.NotImplemented {
		c.IndentedJSON(http.StatusNotImplemented, res)
		return
	}

	c.IndentedJSON(http.StatusOK, res)
}

func (s *Server) getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(s.conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}
