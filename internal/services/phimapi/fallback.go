package phimapi

import "github.com/hoanvu/gophim/internal/models"

// Static data substituted for catalog listings when the upstream API is
// unreachable. Detail and search calls never use it.

var fallbackMovies = []models.Movie{
	{
		ID:             "fb-nguoi-nhen-du-hanh",
		Name:           "Người Nhện: Du Hành Vũ Trụ Nhện",
		OriginName:     "Spider-Man: Across the Spider-Verse",
		Slug:           "nguoi-nhen-du-hanh-vu-tru-nhen",
		Year:           2023,
		PosterURL:      "upload/vod/nguoi-nhen-du-hanh.jpg",
		Quality:        "HD",
		Lang:           "Vietsub",
		Time:           "140 phút",
		EpisodeCurrent: "Full",
		EpisodeTotal:   "1",
		Categories:     []models.Tag{{Name: "Hành Động", Slug: "hanh-dong"}, {Name: "Hoạt Hình", Slug: "hoat-hinh"}},
		Countries:      []models.Tag{{Name: "Âu Mỹ", Slug: "au-my"}},
	},
	{
		ID:             "fb-john-wick-4",
		Name:           "Sát Thủ John Wick 4",
		OriginName:     "John Wick: Chapter 4",
		Slug:           "sat-thu-john-wick-4",
		Year:           2023,
		PosterURL:      "upload/vod/john-wick-4.jpg",
		Quality:        "FHD",
		Lang:           "Vietsub",
		Time:           "169 phút",
		EpisodeCurrent: "Full",
		EpisodeTotal:   "1",
		Categories:     []models.Tag{{Name: "Hành Động", Slug: "hanh-dong"}},
		Countries:      []models.Tag{{Name: "Âu Mỹ", Slug: "au-my"}},
	},
	{
		ID:             "fb-dao-hai-tac",
		Name:           "Đảo Hải Tặc",
		OriginName:     "One Piece",
		Slug:           "dao-hai-tac",
		Year:           1999,
		PosterURL:      "upload/vod/dao-hai-tac.jpg",
		Quality:        "HD",
		Lang:           "Vietsub",
		Time:           "24 phút/tập",
		EpisodeCurrent: "Tập 1071",
		EpisodeTotal:   "1071",
		Categories:     []models.Tag{{Name: "Hành Động", Slug: "hanh-dong"}, {Name: "Hoạt Hình", Slug: "hoat-hinh"}},
		Countries:      []models.Tag{{Name: "Nhật Bản", Slug: "nhat-ban"}},
	},
	{
		ID:             "fb-ban-tay-diet-quy",
		Name:           "Bàn Tay Diệt Quỷ",
		OriginName:     "The Priests",
		Slug:           "ban-tay-diet-quy",
		Year:           2015,
		PosterURL:      "upload/vod/ban-tay-diet-quy.jpg",
		Quality:        "HD",
		Lang:           "Thuyết Minh",
		Time:           "108 phút",
		EpisodeCurrent: "Full",
		EpisodeTotal:   "1",
		Categories:     []models.Tag{{Name: "Hành Động", Slug: "hanh-dong"}, {Name: "Kinh Dị", Slug: "kinh-di"}},
		Countries:      []models.Tag{{Name: "Hàn Quốc", Slug: "han-quoc"}},
	},
	{
		ID:             "fb-nu-hon-bac-ty",
		Name:           "Nụ Hôn Bạc Tỷ",
		OriginName:     "Billion-Dollar Kiss",
		Slug:           "nu-hon-bac-ty",
		Year:           2025,
		PosterURL:      "upload/vod/nu-hon-bac-ty.jpg",
		Quality:        "FHD",
		Lang:           "Lồng Tiếng",
		Time:           "100 phút",
		EpisodeCurrent: "Full",
		EpisodeTotal:   "1",
		Categories:     []models.Tag{{Name: "Tình Cảm", Slug: "tinh-cam"}, {Name: "Hài Hước", Slug: "hai-huoc"}},
		Countries:      []models.Tag{{Name: "Việt Nam", Slug: "viet-nam"}},
	},
	{
		ID:             "fb-tay-du-ky",
		Name:           "Tây Du Ký",
		OriginName:     "Journey to the West",
		Slug:           "tay-du-ky",
		Year:           1986,
		PosterURL:      "upload/vod/tay-du-ky.jpg",
		Quality:        "SD",
		Lang:           "Thuyết Minh",
		Time:           "45 phút/tập",
		EpisodeCurrent: "Tập 25",
		EpisodeTotal:   "25",
		Categories:     []models.Tag{{Name: "Cổ Trang", Slug: "co-trang"}, {Name: "Phiêu Lưu", Slug: "phieu-luu"}},
		Countries:      []models.Tag{{Name: "Trung Quốc", Slug: "trung-quoc"}},
	},
}

var fallbackGenres = []models.Tag{
	{Name: "Hành Động", Slug: "hanh-dong"},
	{Name: "Tình Cảm", Slug: "tinh-cam"},
	{Name: "Hài Hước", Slug: "hai-huoc"},
	{Name: "Cổ Trang", Slug: "co-trang"},
	{Name: "Kinh Dị", Slug: "kinh-di"},
	{Name: "Hoạt Hình", Slug: "hoat-hinh"},
	{Name: "Phiêu Lưu", Slug: "phieu-luu"},
	{Name: "Khoa Học Viễn Tưởng", Slug: "khoa-hoc-vien-tuong"},
}

var fallbackCountries = []models.Tag{
	{Name: "Việt Nam", Slug: "viet-nam"},
	{Name: "Trung Quốc", Slug: "trung-quoc"},
	{Name: "Hàn Quốc", Slug: "han-quoc"},
	{Name: "Nhật Bản", Slug: "nhat-ban"},
	{Name: "Thái Lan", Slug: "thai-lan"},
	{Name: "Âu Mỹ", Slug: "au-my"},
}

// FallbackCatalog returns a fresh single-page catalog of the static data
func FallbackCatalog() *models.PageResult {
	items := make([]models.Movie, len(fallbackMovies))
	copy(items, fallbackMovies)
	return &models.PageResult{
		Items: items,
		Pagination: models.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			PageSize:    len(items),
			Total:       len(items),
		},
	}
}

// FallbackGenres returns a copy of the static genre taxonomy
func FallbackGenres() []models.Tag {
	tags := make([]models.Tag, len(fallbackGenres))
	copy(tags, fallbackGenres)
	return tags
}

// FallbackCountries returns a copy of the static country taxonomy
func FallbackCountries() []models.Tag {
	tags := make([]models.Tag, len(fallbackCountries))
	copy(tags, fallbackCountries)
	return tags
}
