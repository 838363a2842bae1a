package model

// 默认参数，与命令行示例一致
const (
	DefaultRadius     = 5.0
	DefaultWidth      = 2.0
	DefaultResolution = 100

	// 网格至少需要两个采样点才能形成一个单元
	MinResolution = 2
)

// 消息类型
const (
	MsgParams = "params"
	MsgResult = "result"
	MsgRender = "render"
	MsgImage  = "image"
	MsgError  = "error"
)
