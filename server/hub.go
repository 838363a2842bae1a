package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"mobius/calculator"
	"mobius/model"
	"mobius/render"
)

// Settings 每个连接共用的计算与绘图配置
type Settings struct {
	MaxResolution int
	Step          int // 推送网格的抽样间隔
	Options       []calculator.Option
	Render        render.Options
}

// Hub serves one websocket client: requests are read by the server loop,
// answered in handleRequest and written back in handleResponse.
type Hub struct {
	conn     *websocket.Conn
	settings Settings
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, settings Settings) *Hub {
	return &Hub{
		conn:     conn,
		settings: settings,
		msg:      make(chan model.Msg, 10),
		reply:    make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.dispatch(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Error("write reply: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) stop() {
	close(h.done)
}

// dispatch 根据消息类型计算回复，不涉及连接读写
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.MsgParams:
		s, err := h.newStrip(msg.Content)
		if err != nil {
			return errorMsg(err)
		}
		data, err := json.Marshal(s.BuildData(h.settings.Step))
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgResult, Content: string(data)}
	case model.MsgRender:
		s, err := h.newStrip(msg.Content)
		if err != nil {
			return errorMsg(err)
		}
		opts := h.settings.Render
		res := s.Result()
		opts.Caption = caption(res)
		r, err := render.NewRenderer(opts)
		if err != nil {
			return errorMsg(err)
		}
		var buf bytes.Buffer
		if err := r.Encode(&buf, s.Mesh()); err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: model.MsgImage, Content: base64.StdEncoding.EncodeToString(buf.Bytes())}
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (h *Hub) newStrip(content string) (calculator.Calculator, error) {
	var p model.Params
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	if h.settings.MaxResolution > 0 && p.Resolution > h.settings.MaxResolution {
		return nil, fmt.Errorf("%w: resolution %d exceeds server limit %d",
			model.ErrInvalidParameter, p.Resolution, h.settings.MaxResolution)
	}
	return calculator.NewStrip(p, h.settings.Options...)
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}

func caption(res model.Result) string {
	return fmt.Sprintf("%s  Surface Area: %.2f  Edge Length: %.2f",
		res.Params.String(), res.SurfaceArea, res.EdgeLength)
}
