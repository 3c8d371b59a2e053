package api

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/chenBenjamin97/ball-tracker/pkg/track"
	"github.com/chenBenjamin97/ball-tracker/pkg/utils"
	"github.com/cyclopcam/logs"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

//Submitter accepts uploaded videos for tagging
type Submitter interface {
	Submit(name string) bool
}

//cleanRequest is the body of /api/Clean. Config fields left out keep their configured value.
type cleanRequest struct {
	Track  track.Track  `json:"track" binding:"required"`
	Config track.Config `json:"config"`
}

func SetRouter(log logs.Log, queue Submitter) *gin.Engine {
	r := gin.Default()

	//serve html pages to client
	r.Static("/client", viper.GetString("frontend.static-files-path"))
	r.StaticFile("/", viper.GetString("frontend.static-files-path")+"home_page/dist/index.html")

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/ReadyVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.ready")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/UserUploadsVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/Play", func(ctx *gin.Context) {
		videoName := ctx.Request.URL.Query().Get("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		analyzed := ctx.Request.URL.Query().Get("analyzed")
		if analyzed != "true" && analyzed != "false" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		var videoPath string
		if analyzed == "true" {
			videoPath = path.Join(viper.GetString("directory.ready"), videoName+"."+viper.GetString("video.prod_format"))
		} else {
			videoPath = path.Join(viper.GetString("directory.source"), videoName+"."+viper.GetString("video.prod_format"))
		}

		serveFile(ctx, videoPath, "video/mp4")
	})

	apiRoutes.GET("/Track", func(ctx *gin.Context) {
		videoName := ctx.Request.URL.Query().Get("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		serveFile(ctx, path.Join(viper.GetString("directory.tracks"), utils.BaseName(videoName)+utils.TrackFileExt), "application/json")
	})

	apiRoutes.POST("/Clean", func(ctx *gin.Context) {
		cfg, err := utils.TrackConfig()
		if err != nil {
			log.Errorf("api/Clean: Invalid tracking configuration, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		req := cleanRequest{Config: cfg}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := track.Clean(req.Track, req.Config)
		if err != nil {
			if errors.Is(err, track.ErrInvalidTrackLength) || errors.Is(err, track.ErrInvalidPoint) || errors.Is(err, track.ErrInvalidConfig) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Errorf("api/Clean: Could not clean track, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, res)
	})

	apiRoutes.POST("/Upload", func(ctx *gin.Context) {
		file, fHeader, err := ctx.Request.FormFile("video")
		if err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		defer file.Close()

		fileName := path.Base(fHeader.Filename)
		if existNames, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		} else {
			if utils.InSlice(fileName, existNames) {
				ctx.Status(http.StatusNotAcceptable)
				return
			}
		}

		log.Infof("api/Upload: Recived new file: name - '%s', size - %v Bytes", fHeader.Filename, fHeader.Size)

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			log.Errorf("api/Upload: Could not read request's body, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		srcFilePath := path.Join(viper.GetString("directory.source"), fileName)

		if err = os.WriteFile(srcFilePath, fileBytes, 0444); err != nil {
			log.Errorf("api/Upload: Could not write '%s' file, got '%v'", srcFilePath, err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		if !queue.Submit(fileName) {
			log.Warnf("api/Upload: Queue is full, '%s' will not be tagged", fHeader.Filename)
			ctx.Status(http.StatusServiceUnavailable)
			return
		}

		ctx.Status(http.StatusAccepted)
	})

	return r
}

//serveFile answers with the file at filePath, or 404 when it does not exist
func serveFile(ctx *gin.Context, filePath, contentType string) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			ctx.Status(http.StatusNotFound)
		} else {
			ctx.Status(http.StatusInternalServerError)
		}
		return
	}

	ctx.Header("Content-Type", contentType)
	http.ServeFile(ctx.Writer, ctx.Request, filePath)
}
