package domain

// NovelInfo is the subset of the novels endpoint this client works with.
type NovelInfo struct {
	NovelID        int     `json:"novelId"`
	NovelName      string  `json:"novelName"`
	AuthorID       int     `json:"authorId"`
	AuthorName     string  `json:"authorName"`
	CharCount      int     `json:"charCount"`
	ChapterCount   int     `json:"chapterCount"`
	ViewTimes      int     `json:"viewTimes"`
	MarkCount      int     `json:"markCount"`
	Point          float64 `json:"point"`
	IsFinish       bool    `json:"isFinish"`
	SignStatus     string  `json:"signStatus"`
	TypeID         int     `json:"typeId"`
	NovelCover     string  `json:"novelCover"`
	LastUpdateTime string  `json:"lastUpdateTime"`
}

// Chapter is one entry of a volume's chapter list.
type Chapter struct {
	ChapID              int     `json:"chapId"`
	NovelID             int     `json:"novelId"`
	VolumeID            int     `json:"volumeId"`
	Title               string  `json:"title"`
	Sno                 float64 `json:"sno"`
	ChapOrder           int     `json:"chapOrder"`
	CharCount           int     `json:"charCount"`
	IsVip               bool    `json:"isVip"`
	NeedFireMoney       int     `json:"needFireMoney"`
	OriginNeedFireMoney int     `json:"originNeedFireMoney"`
	AddTime             string  `json:"addTime"`
	UpdateTime          string  `json:"updateTime"`
}

// Volume is one entry of the catalogue's volumeList.
type Volume struct {
	VolumeID    int       `json:"volumeId"`
	Title       string    `json:"title"`
	Sno         float64   `json:"sno"`
	ChapterList []Chapter `json:"chapterList"`
}

// Catalogue is the full volume/chapter directory of a novel, as returned by
// the dirs endpoint.
type Catalogue []Volume

// VolumeSummary is the per-volume projection derived from the catalogue.
type VolumeSummary struct {
	VolumeID     int    `json:"volumeId"`
	Title        string `json:"title"`
	ChapterCount int    `json:"chapterCount"`
	CharCount    int    `json:"charCount"`
}

// UserProfile is the subset of the current-user endpoint this client works with.
type UserProfile struct {
	AccountID int    `json:"accountId"`
	UserName  string `json:"userName"`
	NickName  string `json:"nickName"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	FireMoney int    `json:"fireMoney"`
	IsAuthor  bool   `json:"isAuthor"`
}

// Credentials is the persisted authentication record: the two session cookies
// plus the device identity and app pairing they were issued against.
type Credentials struct {
	Token       string `json:"token"`       // cookie .SFCommunity
	Session     string `json:"session"`     // cookie session_APP
	DeviceToken string `json:"devicetoken"` // lowercase UUID
	AppVersion  string `json:"appversion"`
	Channel     string `json:"channel"`
}
