package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/handler"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/services"
)

func TestIntegration(t *testing.T) {
	// 1. Setup DB (shared-cache memory so the pool sees one database)
	dbURL := "file:coupondb1?mode=memory&cache=shared"
	repo, err := sqlite.NewSQLiteRepository(dbURL)
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}

	// 2. Setup Service
	catalog, err := services.NewCatalogService(context.Background(), repo, repo)
	if err != nil {
		t.Fatalf("Failed to init catalog: %v", err)
	}

	// 3. Setup Router
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminPassword: "letmein",
		AppEnv:        "test",
	}
	gate := handler.NewSessionGate(cfg, repo)
	mux := handler.NewRouter(cfg, catalog, catalog, gate)

	server := httptest.NewServer(mux)
	defer server.Close()

	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	// TEST 1: Home payload
	resp, err := client.Get(server.URL + "/api/v1/home")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Home expected 200, got %d", resp.StatusCode)
	}
	var home struct {
		Coupons    []domain.Coupon   `json:"coupons"`
		Stores     []domain.Store    `json:"stores"`
		Categories []domain.Category `json:"categories"`
	}
	json.NewDecoder(resp.Body).Decode(&home)
	if len(home.Coupons) != 4 || len(home.Stores) != 6 || len(home.Categories) != 5 {
		t.Errorf("Home sizes: got %d/%d/%d, want 4/6/5",
			len(home.Coupons), len(home.Stores), len(home.Categories))
	}

	// TEST 2: Store page by slug
	var storePage struct {
		Store   domain.Store    `json:"store"`
		Coupons []domain.Coupon `json:"coupons"`
	}
	resp, err = client.Get(server.URL + "/api/v1/stores/nike")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Store expected 200, got %d", resp.StatusCode)
	}
	json.NewDecoder(resp.Body).Decode(&storePage)
	if storePage.Store.ID != "1" {
		t.Errorf("Store ID: got %s, want 1", storePage.Store.ID)
	}
	if len(storePage.Coupons) != 1 || storePage.Coupons[0].ID != "c1" {
		t.Errorf("Nike coupons: got %+v, want exactly [c1]", storePage.Coupons)
	}

	// TEST 3: Unknown slug is a soft 404
	resp, _ = client.Get(server.URL + "/api/v1/stores/unknown")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Unknown store expected 404, got %d", resp.StatusCode)
	}

	// TEST 4: Click tracking increments and persists
	resp, err = client.Post(server.URL+"/api/v1/coupons/c1/click", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Track click expected 204, got %d", resp.StatusCode)
	}

	resp, _ = client.Get(server.URL + "/api/v1/stores/nike")
	json.NewDecoder(resp.Body).Decode(&storePage)
	if storePage.Coupons[0].ClickCount != 1241 {
		t.Errorf("c1 clickCount after click: got %d, want 1241", storePage.Coupons[0].ClickCount)
	}

	// TEST 5: Search via store name
	var searchPage struct {
		Coupons []domain.Coupon `json:"coupons"`
	}
	resp, _ = client.Get(server.URL + "/api/v1/search?q=amazon")
	json.NewDecoder(resp.Body).Decode(&searchPage)
	if len(searchPage.Coupons) != 1 || searchPage.Coupons[0].ID != "c2" {
		t.Errorf("Search amazon: got %+v, want [c2]", searchPage.Coupons)
	}

	// TEST 6: `?manage` marker redirects to the login page
	resp, _ = client.Get(server.URL + "/?manage")
	if resp.StatusCode != http.StatusFound {
		t.Errorf("Manage marker expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/login" {
		t.Errorf("Manage redirect location: got %s, want /admin/login", loc)
	}

	// TEST 7: Dashboard is gated
	resp, _ = client.Get(server.URL + "/admin/api/dashboard")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Unauthenticated dashboard expected 401, got %d", resp.StatusCode)
	}

	// TEST 8: Login opens the gate
	body, _ := json.Marshal(map[string]string{"password": "letmein"})
	resp, err = client.Post(server.URL+"/admin/api/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login expected 200, got %d", resp.StatusCode)
	}
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("Login did not set a session cookie")
	}

	// TEST 9: Dashboard with session
	req, _ := http.NewRequest("GET", server.URL+"/admin/api/dashboard", nil)
	req.AddCookie(session)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Dashboard expected 200, got %d", resp.StatusCode)
	}
	var dashboard struct {
		Stats   domain.SiteStats `json:"stats"`
		Coupons []domain.Coupon  `json:"coupons"`
	}
	json.NewDecoder(resp.Body).Decode(&dashboard)
	if dashboard.Stats.TotalClicks != 6151 { // 6150 seeded + 1 tracked above
		t.Errorf("totalClicks: got %d, want 6151", dashboard.Stats.TotalClicks)
	}
	if len(dashboard.Coupons) != 4 {
		t.Errorf("Dashboard coupons: got %d, want 4", len(dashboard.Coupons))
	}

	// TEST 10: Bulk coupon overwrite
	updated := dashboard.Coupons
	updated[0].Title = "25% Off Entire Order"
	body, _ = json.Marshal(updated)
	req, _ = http.NewRequest("PUT", server.URL+"/admin/api/coupons", bytes.NewBuffer(body))
	req.AddCookie(session)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Update coupons expected 200, got %d", resp.StatusCode)
	}

	resp, _ = client.Get(server.URL + "/api/v1/stores/nike")
	json.NewDecoder(resp.Body).Decode(&storePage)
	if storePage.Coupons[0].Title != "25% Off Entire Order" {
		t.Errorf("Overwrite not visible: got %q", storePage.Coupons[0].Title)
	}

	// TEST 11: Logout closes the gate again
	req, _ = http.NewRequest("POST", server.URL+"/admin/api/logout", nil)
	req.AddCookie(session)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Logout expected 200, got %d", resp.StatusCode)
	}

	resp, _ = client.Get(server.URL + "/admin/api/dashboard")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Dashboard after logout expected 401, got %d", resp.StatusCode)
	}
}
