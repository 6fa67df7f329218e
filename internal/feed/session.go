package feed

import (
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/dgnsrekt/livefeed/internal/sign"
)

const (
	// DefaultPushURL is the push socket endpoint.
	DefaultPushURL = "wss://webcast5-ws-web-lf.douyin.com/webcast/im/push/v2/"

	// DefaultUserAgent is the browser identity presented to the platform.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0"

	versionCode       = "180800"
	webcastSDKVersion = "1.0.14-beta.0"
	appID             = "6383"

	minUserUniqueID = 7300000000000000000
	maxUserUniqueID = 7999999999999999999
)

// NewUserUniqueID picks a fresh pseudo device id for a session.
func NewUserUniqueID() string {
	n := minUserUniqueID + rand.Int64N(maxUserUniqueID-minUserUniqueID+1)
	return strconv.FormatInt(n, 10)
}

// SignatureParams lists the inputs to the signature stub. Order matters.
func SignatureParams(roomID, uid string) sign.Params {
	return sign.Params{
		{Key: "live_id", Value: "1"},
		{Key: "aid", Value: appID},
		{Key: "version_code", Value: versionCode},
		{Key: "webcast_sdk_version", Value: webcastSDKVersion},
		{Key: "room_id", Value: roomID},
		{Key: "sub_room_id", Value: ""},
		{Key: "sub_channel_id", Value: ""},
		{Key: "did_rule", Value: "3"},
		{Key: "user_unique_id", Value: uid},
		{Key: "device_platform", Value: "web"},
		{Key: "device_type", Value: ""},
		{Key: "ac", Value: ""},
		{Key: "identity", Value: "audience"},
	}
}

// socketURL assembles the push endpoint URL with the fixed query set.
// Parameters are emitted in a stable order.
func socketURL(base, roomID, uid, signature, userAgent string) string {
	name, version := browserIdentity(userAgent)
	params := sign.Params{
		{Key: "room_id", Value: roomID},
		{Key: "compress", Value: "gzip"},
		{Key: "version_code", Value: versionCode},
		{Key: "webcast_sdk_version", Value: webcastSDKVersion},
		{Key: "live_id", Value: "1"},
		{Key: "did_rule", Value: "3"},
		{Key: "user_unique_id", Value: uid},
		{Key: "identity", Value: "audience"},
		{Key: "signature", Value: signature},
		{Key: "aid", Value: appID},
		{Key: "device_platform", Value: "web"},
		{Key: "browser_language", Value: "zh-CN"},
		{Key: "browser_platform", Value: "Win32"},
		{Key: "browser_name", Value: name},
		{Key: "browser_version", Value: version},
	}

	var sb strings.Builder
	sb.WriteString(base)
	if strings.Contains(base, "?") {
		sb.WriteByte('&')
	} else {
		sb.WriteByte('?')
	}
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// browserIdentity splits "Mozilla/5.0 (...)" into "Mozilla" and "5.0 (...)".
func browserIdentity(userAgent string) (name, version string) {
	name, version, _ = strings.Cut(userAgent, "/")
	return name, version
}
