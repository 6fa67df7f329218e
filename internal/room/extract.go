package room

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	roomInfoRe = regexp.MustCompile(`room\\":{.*\\"id_str\\":\\"(\d+)\\".*,\\"status\\":(\d+).*"title\\":\\"([^"]*)\\"`)
	roomIDRe   = regexp.MustCompile(`roomId\\":\\"(\d+)\\"`)
	ownerRe    = regexp.MustCompile(`owner\\":(.*?),\\"room_auth`)
	hlsRe      = regexp.MustCompile(`hls_pull_url_map\\":(\{.*?})`)
	flvRe      = regexp.MustCompile(`flv\\":\\"(.*?)\\"`)
)

// statusClosed is the page status value of an ended broadcast.
const statusClosed = "4"

// Extractor pulls room metadata out of the live page body. The cookie is
// filled in by the resolver.
type Extractor func(page string) (*Info, error)

// ExtractPage is the default Extractor for the escaped JSON embedded in the
// live page. Only the numeric room id is mandatory; the anchor and stream
// URLs are best effort.
func ExtractPage(page string) (*Info, error) {
	info := &Info{}

	if m := roomInfoRe.FindStringSubmatch(page); m != nil {
		info.Status = m[2]
		info.Title = m[3]
		if info.Status == statusClosed {
			return info, ErrRoomClosed
		}
	}

	m := roomIDRe.FindStringSubmatch(page)
	if m == nil {
		return info, ErrRoomIDNotFound
	}
	info.RoomID = m[1]

	if m := ownerRe.FindStringSubmatch(page); m != nil {
		var owner struct {
			Nickname string `json:"nickname"`
			IDStr    string `json:"id_str"`
		}
		if json.Unmarshal([]byte(unescape(m[1])), &owner) == nil {
			info.AnchorName = owner.Nickname
			info.AnchorID = owner.IDStr
		}
	}

	if m := hlsRe.FindStringSubmatch(page); m != nil {
		var urls map[string]string
		if json.Unmarshal([]byte(unescape(m[1])), &urls) == nil {
			hls := urls["FULL_HD1"]
			if hls == "" {
				hls = urls["HD1"]
			}
			info.HLSURL = secure(hls)
		}
	}

	if m := flvRe.FindStringSubmatch(page); m != nil {
		info.FLVURL = secure(unescape(m[1]))
	}

	return info, nil
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\u0026`, "&")
	return strings.ReplaceAll(s, `\u0026`, "&")
}

func secure(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}
