package consts

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimeWebP = "image/webp"
)

// CommentImageMaxSize 评论图片大小上限 5MB
const CommentImageMaxSize = 5 * 1024 * 1024

// CommentMaxLength 评论正文长度上限
const CommentMaxLength = 5000

// CommentDeletedPlaceholder 软删除后展示的占位文案
const CommentDeletedPlaceholder = "该评论已被删除"

const (
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusPaused     = "paused"
	ProjectStatusArchived   = "archived"
)

const (
	AdPositionHeader        = "header"
	AdPositionSidebar       = "sidebar"
	AdPositionContentTop    = "content_top"
	AdPositionContentMiddle = "content_middle"
	AdPositionContentBottom = "content_bottom"
	AdPositionFooter        = "footer"
	AdPositionBetweenPosts  = "between_posts"
	AdPositionPopup         = "popup"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DeviceKey Context 中的设备类型 Key
const DeviceKey = "device"

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)
