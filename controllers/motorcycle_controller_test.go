package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motostock-api/models"
	"motostock-api/repositories"
)

func setupMotorcycleRoutes(t *testing.T) (*httptest.Server, *repositories.MotorcycleRepository) {
	t.Helper()

	repo := repositories.NewMotorcycleRepository(newTestDB(t))
	ctrl := NewMotorcycleController(repo)

	r := newTestRouter()
	r.GET("/motorcycles", ctrl.List)
	r.GET("/motorcycles/search", ctrl.Search)
	r.GET("/motorcycles/:id", ctrl.Get)
	r.POST("/motorcycles", ctrl.Create)
	r.PUT("/motorcycles/:id", ctrl.Update)
	r.DELETE("/motorcycles/:id", ctrl.Delete)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestCreateAndGetMotorcycle(t *testing.T) {
	srv, _ := setupMotorcycleRoutes(t)

	body := []byte(`{"brand":"Honda","displacement":150,"price":4500.5,"color":"red"}`)
	resp, err := http.Post(srv.URL+"/motorcycles", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /motorcycles: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /motorcycles status = %d, want 201", resp.StatusCode)
	}

	var created models.Motorcycle
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created motorcycle has no id")
	}

	getResp, err := http.Get(srv.URL + "/motorcycles/1")
	if err != nil {
		t.Fatalf("GET /motorcycles/1: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("GET /motorcycles/1 status = %d, want 200", getResp.StatusCode)
	}

	var got models.Motorcycle
	if err := json.NewDecoder(getResp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got != created {
		t.Errorf("GET returned %+v, want %+v", got, created)
	}
}

func TestCreateMotorcycleRejectsMissingFields(t *testing.T) {
	srv, _ := setupMotorcycleRoutes(t)

	body := []byte(`{"brand":"Honda"}`)
	resp, err := http.Post(srv.URL+"/motorcycles", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /motorcycles: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST with missing fields status = %d, want 400", resp.StatusCode)
	}
}

func TestGetMotorcycleNotFound(t *testing.T) {
	srv, _ := setupMotorcycleRoutes(t)

	resp, err := http.Get(srv.URL + "/motorcycles/99")
	if err != nil {
		t.Fatalf("GET /motorcycles/99: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET missing id status = %d, want 404", resp.StatusCode)
	}
}

func TestSearchMotorcyclesByBrand(t *testing.T) {
	srv, repo := setupMotorcycleRoutes(t)

	for _, brand := range []string{"Honda", "Honda CB", "Yamaha"} {
		moto := models.Motorcycle{Brand: brand, Displacement: 150, Price: 4000, Color: "red"}
		if err := repo.Save(&moto); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	resp, err := http.Get(srv.URL + "/motorcycles/search?brand=honda")
	if err != nil {
		t.Fatalf("GET search: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d, want 200", resp.StatusCode)
	}

	var motos []models.Motorcycle
	if err := json.NewDecoder(resp.Body).Decode(&motos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(motos) != 2 {
		t.Errorf("search by brand = %d rows, want 2", len(motos))
	}
}

func TestSearchMotorcyclesBadInput(t *testing.T) {
	srv, _ := setupMotorcycleRoutes(t)

	for _, query := range []string{
		"?max_price=abc",
		"?min_displacement=200&max_displacement=100",
		"",
	} {
		resp, err := http.Get(srv.URL + "/motorcycles/search" + query)
		if err != nil {
			t.Fatalf("GET search%s: %v", query, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("search%s status = %d, want 400", query, resp.StatusCode)
		}
	}
}

func TestDeleteMotorcycle(t *testing.T) {
	srv, repo := setupMotorcycleRoutes(t)

	moto := models.Motorcycle{Brand: "Suzuki", Displacement: 125, Price: 3000, Color: "black"}
	if err := repo.Save(&moto); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/motorcycles/1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /motorcycles/1: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("DELETE status = %d, want 200", resp.StatusCode)
	}

	if _, err := repo.FindByID(moto.ID); err == nil {
		t.Error("motorcycle still present after DELETE")
	}
}
