package consts

const (
	ProjectLikeKey        = "project:like:"
	CommentLikeKey        = "comment:like:"
	NotificationUnreadKey = "notification:unread:"
	AdImpressionKey       = "ad:impression:"
	AdClickKey            = "ad:click:"
	AdDirtyKey            = "ad:dirty"
	TokenBlacklistPrefix  = "token:blacklist:"
)
