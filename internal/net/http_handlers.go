package net

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	server "tablestage/server"
	"tablestage/server/internal/assets"
)

const writeWait = 10 * time.Second

type RouterConfig struct {
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// wsConn adapts a gorilla connection to the hub's Conn interface. Every
// write gets a deadline so one stalled viewer cannot wedge the fan-out.
type wsConn struct {
	socket *websocket.Conn
}

func (c wsConn) Write(data []byte) error {
	c.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return c.socket.WriteMessage(websocket.TextMessage, data)
}

func (c wsConn) Close() error {
	return c.socket.Close()
}

// NewRouter builds the HTTP surface: one POST endpoint per mutation, the
// websocket route for viewers, the upload side-channel, and static serving
// for uploaded assets and backgrounds. Mutation endpoints reply with a
// trivial acknowledgement; the real effect is observed via the broadcast.
func NewRouter(hub *server.Hub, store *assets.Store, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger

	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server running. Connect a control or display client.")
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/diagnostics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"serverTime":  time.Now().UnixMilli(),
			"subscribers": hub.SubscriberCount(),
		})
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(*http.Request) bool {
			// Origin policy is enforced by the CORS middleware above.
			return true
		},
	}

	r.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error().Err(err).Str("ip", c.ClientIP()).Msg("websocket upgrade failed")
			return
		}

		id, err := hub.Subscribe(wsConn{socket: conn})
		if err != nil {
			logger.Warn().Err(err).Msg("subscribe failed")
			conn.Close()
			return
		}

		// Viewers never send requests over the socket; the read loop only
		// tracks connection lifetime, including abnormal disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unsubscribe(id)
				conn.Close()
				return
			}
		}
	})

	r.POST("/add", func(c *gin.Context) {
		var req addCharacterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Name == nil || req.HP == nil || req.MaxHP == nil {
			badRequest(c, "name, hp and maxHp are required")
			return
		}
		hub.AddCharacter(*req.Name, *req.HP, *req.MaxHP, req.Image)
		ack(c)
	})

	r.POST("/remove", func(c *gin.Context) {
		var req removeCharacterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Name == nil {
			badRequest(c, "name is required")
			return
		}
		hub.RemoveCharacter(*req.Name)
		ack(c)
	})

	r.POST("/update", func(c *gin.Context) {
		var req adjustHPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Name == nil || req.Delta == nil {
			badRequest(c, "name and delta are required")
			return
		}
		hub.AdjustHP(*req.Name, *req.Delta)
		ack(c)
	})

	r.POST("/updateInitiative", func(c *gin.Context) {
		var req setInitiativeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Name == nil || req.Initiative == nil {
			badRequest(c, "name and initiative are required")
			return
		}
		hub.SetInitiative(*req.Name, *req.Initiative)
		ack(c)
	})

	r.POST("/addAbility", func(c *gin.Context) {
		req, ok := bindAbility(c)
		if !ok {
			return
		}
		hub.AddAbility(*req.Name, *req.Ability)
		ack(c)
	})

	r.POST("/removeAbility", func(c *gin.Context) {
		req, ok := bindAbility(c)
		if !ok {
			return
		}
		hub.RemoveAbility(*req.Name, *req.Ability)
		ack(c)
	})

	r.POST("/setAvailableAbilities", func(c *gin.Context) {
		req, ok := bindAbility(c)
		if !ok {
			return
		}
		hub.ToggleAbility(*req.Name, *req.Ability)
		ack(c)
	})

	r.POST("/setBg", func(c *gin.Context) {
		var req setBackgroundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Background == nil {
			badRequest(c, "background is required")
			return
		}
		hub.SetBackground(*req.Background)
		ack(c)
	})

	r.POST("/setWeather", func(c *gin.Context) {
		var req setWeatherRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Weather == nil {
			badRequest(c, "weather is required")
			return
		}
		if err := hub.SetWeather(*req.Weather); err != nil {
			badRequest(c, err.Error())
			return
		}
		ack(c)
	})

	r.POST("/upload", func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			badRequest(c, "name is required")
			return
		}
		header, err := c.FormFile("file")
		if err != nil {
			badRequest(c, "file is required")
			return
		}
		file, err := header.Open()
		if err != nil {
			badRequest(c, "unreadable file")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			badRequest(c, "unreadable file")
			return
		}

		imageURL, err := store.Save(header.Filename, data)
		if err != nil {
			logger.Error().Err(err).Str("filename", header.Filename).Msg("upload failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}

		// The hub is told only after the bytes are durably written.
		hub.AssignImage(name, imageURL)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "image": imageURL})
	})

	r.Static("/static", store.Root())

	return r
}

func bindAbility(c *gin.Context) (abilityRequest, bool) {
	var req abilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return req, false
	}
	if req.Name == nil || req.Ability == nil {
		badRequest(c, "name and ability are required")
		return req, false
	}
	return req, true
}

func ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
