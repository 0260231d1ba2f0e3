package content

// Default datasets returned when a collection has never been saved (or its
// blob is unreadable). Read-only constant tables; the store hands out
// copies.

var defaultLeaders = []Leader{}

var defaultGalleryImages = []GalleryImage{
	{ID: "1", Src: "/assets/gallery/violin-performance.jpg", Title: "Violin Performance", Description: "Violinists performing during a special service", Category: "Music Ministry"},
	{ID: "2", Src: "/assets/gallery/orchestra-conductor.jpg", Title: "Orchestra Worship", Description: "The full orchestra led by our conductor in praise", Category: "Music Ministry"},
	{ID: "3", Src: "/assets/gallery/full-orchestra.jpg", Title: "Full Orchestra Performance", Description: "Our complete orchestra performing together", Category: "Music Ministry"},
	{ID: "4", Src: "/assets/gallery/congregation.jpg", Title: "Congregation in Worship", Description: "Our congregation lifting their hands in worship", Category: "Worship"},
	{ID: "5", Src: "/assets/gallery/saxophone-duo.jpg", Title: "Saxophone Section", Description: "Our talented saxophonists during a performance", Category: "Music Ministry"},
	{ID: "6", Src: "/assets/gallery/brass-section.jpg", Title: "Brass Section", Description: "Saxophone and trumpet players leading worship", Category: "Music Ministry"},
	{ID: "7", Src: "/assets/gallery/trumpet-players.jpg", Title: "Trumpet Players", Description: "Our trumpet players glorifying God through music", Category: "Music Ministry"},
	{ID: "8", Src: "/assets/gallery/flute-players.jpg", Title: "Flute Section", Description: "Flutists performing during a special service", Category: "Music Ministry"},
	{ID: "9", Src: "/assets/gallery/keyboard-players.jpg", Title: "Keyboard Players", Description: "Our talented keyboardists leading worship", Category: "Music Ministry"},
	{ID: "10", Src: "/assets/gallery/outdoor-service.jpg", Title: "Outdoor Service", Description: "Fellowship gathering for an outdoor worship service", Category: "Fellowship"},
	{ID: "11", Src: "/assets/gallery/outdoor-violins.jpg", Title: "Outdoor Violin Performance", Description: "Violinists playing during outdoor worship", Category: "Music Ministry"},
	{ID: "12", Src: "/assets/gallery/group-photo.jpg", Title: "Fellowship Group Photo", Description: "Our fellowship family united together", Category: "Fellowship"},
	{ID: "13", Src: "/assets/gallery/fellowship-meeting.jpg", Title: "Fellowship Meeting", Description: "Members gathering for fellowship and discussion", Category: "Fellowship"},
}

var defaultMembers = []Member{}

var defaultEvents = []Event{}

var defaultScriptures = []Scripture{}
