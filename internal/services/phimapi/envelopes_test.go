package phimapi

import "testing"

func TestParsePageFlat(t *testing.T) {
	body := []byte(`{
		"status": true,
		"items": [
			{"_id": "1", "name": "Đảo Hải Tặc", "slug": "dao-hai-tac", "poster_url": "upload/a.jpg"}
		],
		"pagination": {"totalItems": 240, "totalItemsPerPage": 24, "currentPage": 2, "totalPages": 10}
	}`)

	page, err := ParsePage(body)
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "dao-hai-tac" {
		t.Errorf("Unexpected items: %+v", page.Items)
	}
	p := page.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 10 || p.PageSize != 24 || p.Total != 240 {
		t.Errorf("Unexpected pagination: %+v", p)
	}
}

func TestParsePageDataParams(t *testing.T) {
	body := []byte(`{
		"status": "success",
		"data": {
			"items": [{"_id": "1", "name": "Tây Du Ký", "slug": "tay-du-ky"}],
			"params": {
				"pagination": {"totalItems": 50, "totalItemsPerPage": 10, "currentPage": 1, "totalPages": 5}
			}
		}
	}`)

	page, err := ParsePage(body)
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Slug != "tay-du-ky" {
		t.Errorf("Unexpected items: %+v", page.Items)
	}
	if page.Pagination.TotalPages != 5 || page.Pagination.Total != 50 {
		t.Errorf("Unexpected pagination: %+v", page.Pagination)
	}
}

func TestParsePageDataFlat(t *testing.T) {
	body := []byte(`{
		"data": {
			"items": [{"_id": "1", "name": "John Wick 4", "slug": "john-wick-4"}],
			"currentPage": 3,
			"totalPages": 7
		}
	}`)

	page, err := ParsePage(body)
	if err != nil {
		t.Fatalf("ParsePage failed: %v", err)
	}
	if page.Pagination.CurrentPage != 3 || page.Pagination.TotalPages != 7 {
		t.Errorf("Unexpected pagination: %+v", page.Pagination)
	}
}

func TestParsePageRejectsUnknownShape(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"status": true}`),
		[]byte(`{"results": [{"name": "x"}]}`),
		[]byte(`{"data": {"movies": []}}`),
		[]byte(`not json`),
	}

	for _, body := range cases {
		if _, err := ParsePage(body); err == nil {
			t.Errorf("Expected rejection for %s", body)
		}
	}
}

func TestParsePageEmptyItemsIsValid(t *testing.T) {
	body := []byte(`{
		"items": [],
		"pagination": {"totalItems": 0, "totalItemsPerPage": 24, "currentPage": 1, "totalPages": 0}
	}`)

	page, err := ParsePage(body)
	if err != nil {
		t.Fatalf("Empty result pages are still valid envelopes: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(page.Items))
	}
}

func TestParseTagsBareArray(t *testing.T) {
	body := []byte(`[{"_id": "1", "name": "Hành Động", "slug": "hanh-dong"}]`)

	tags, err := ParseTags(body)
	if err != nil {
		t.Fatalf("ParseTags failed: %v", err)
	}
	if len(tags) != 1 || tags[0].Slug != "hanh-dong" {
		t.Errorf("Unexpected tags: %+v", tags)
	}
}

func TestParseTagsWrapped(t *testing.T) {
	body := []byte(`{"data": {"items": [{"name": "Hàn Quốc", "slug": "han-quoc"}]}}`)

	tags, err := ParseTags(body)
	if err != nil {
		t.Fatalf("ParseTags failed: %v", err)
	}
	if len(tags) != 1 || tags[0].Slug != "han-quoc" {
		t.Errorf("Unexpected tags: %+v", tags)
	}
}

func TestParseTagsRejectsUnknownShape(t *testing.T) {
	if _, err := ParseTags([]byte(`{"tags": []}`)); err == nil {
		t.Error("Expected rejection for unknown taxonomy shape")
	}
}

func TestParseDetail(t *testing.T) {
	body := []byte(`{
		"status": true,
		"movie": {
			"_id": "abc",
			"name": "Đảo Hải Tặc",
			"slug": "dao-hai-tac",
			"episode_total": "1071 Tập"
		},
		"episodes": [
			{
				"server_name": "Vietsub #1",
				"server_data": [
					{"name": "Tập 01", "slug": "tap-01", "link_embed": "https://player.example/e/1", "link_m3u8": "https://cdn.example/1.m3u8"}
				]
			}
		]
	}`)

	movie, groups, err := ParseDetail(body)
	if err != nil {
		t.Fatalf("ParseDetail failed: %v", err)
	}
	if movie.Slug != "dao-hai-tac" {
		t.Errorf("Unexpected movie: %+v", movie)
	}
	if len(groups) != 1 || groups[0].ServerName != "Vietsub #1" || len(groups[0].ServerData) != 1 {
		t.Errorf("Unexpected server groups: %+v", groups)
	}
}

func TestParseDetailNotFound(t *testing.T) {
	body := []byte(`{"status": false, "msg": "Phim không tồn tại"}`)

	if _, _, err := ParseDetail(body); err == nil {
		t.Error("Expected error for missing movie")
	}
}
