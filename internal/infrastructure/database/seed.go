package database

import (
	"context"
	"fmt"
	"log"
)

// Seed inserts demonstration content on first run.
// Điều kiện: bảng profile trống. Gọi lại lần 2 sẽ là no-op.
func (db *SQLiteDB) Seed(ctx context.Context) error {
	var count int
	if err := db.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM profile`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count profile rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("[DATABASE] Empty profile table, seeding demonstration content...")

	if _, err := db.DB.ExecContext(ctx, `
		INSERT INTO profile (id, name, tagline, bio, email, phone, location, quote, quote_author)
		VALUES (1, 'Welly Chandra', 'Network Engineer / ICT Trainer',
			'ICT Trainer dengan pengalaman 4 tahun di bidang pengajaran Teknologi Informasi. Telah mengajar lebih dari 100 kelas MikroTik, Fiber Optik, dan Networking Fundamental.',
			'toochwanzz@gmail.com', '+62 858 5570 7450', 'Tuban, Indonesia',
			'Do more than is required. What is the distance between someone who achieves their goals consistently and those who spend their lives merely following? The extra mile.',
			'Welly Chandra')
	`); err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	skills := []struct {
		Name       string
		Percentage int
		SortOrder  int
	}{
		{"MikroTik", 92, 1},
		{"Networking", 88, 2},
		{"Fiber Optik", 82, 3},
		{"Linux / CLI", 75, 4},
	}
	for _, s := range skills {
		if _, err := db.DB.ExecContext(ctx,
			`INSERT INTO skills (name, percentage, sort_order) VALUES (?, ?, ?)`,
			s.Name, s.Percentage, s.SortOrder,
		); err != nil {
			return fmt.Errorf("failed to seed skills: %w", err)
		}
	}

	services := []struct {
		Icon        string
		Title       string
		Description string
		SortOrder   int
	}{
		{"📡", "Network Engineering", "Pengelolaan dan konfigurasi jaringan LAN/WAN/WiFi, router, switch, dan firewall.", 1},
		{"🎓", "ICT Training", "Pelatihan MikroTik, Fiber Optik, dan Networking Fundamental untuk lebih dari 100 kelas.", 2},
		{"🤝", "Education Management", "Supervisi divisi edukasi dan koordinasi kerja sama pelatihan.", 3},
	}
	for _, s := range services {
		if _, err := db.DB.ExecContext(ctx,
			`INSERT INTO services (icon, title, description, sort_order) VALUES (?, ?, ?, ?)`,
			s.Icon, s.Title, s.Description, s.SortOrder,
		); err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}
	}

	experiences := []struct {
		YearRange   string
		Title       string
		Company     string
		Description string
		Type        string
		SortOrder   int
	}{
		{"Jan 2025 – Present", "Education Division Supervisor", "PT Axelerasi Bhinneka Teknologi", "Mengelola operasional divisi Edukasi, kerja sama dengan perusahaan/sekolah.", "experience", 1},
		{"Jun 2022 – Present", "Network Engineer", "PT Axelerasi Bhinneka Teknologi", "Mengelola LAN/WAN/WiFi, konfigurasi router & switch, troubleshooting jaringan.", "experience", 2},
		{"Jun 2022 – Present", "ICT Trainer", "PT Axelerasi Bhinneka Teknologi", "Menyampaikan pelatihan ICT, menyiapkan modul, evaluasi peserta.", "experience", 3},
		{"Jan 2025 – Present", "Ilmu Komunikasi", "Universitas Terbuka", "Menempuh pendidikan tinggi jurusan Ilmu Komunikasi secara jarak jauh.", "education", 1},
		{"Jul 2020 – Apr 2023", "Teknik Komputer dan Jaringan", "SMK Negeri 1 Tambakboyo", "Dasar-dasar jaringan komputer, konfigurasi perangkat keras.", "education", 2},
	}
	for _, e := range experiences {
		if _, err := db.DB.ExecContext(ctx,
			`INSERT INTO experiences (year_range, title, company, description, type, sort_order) VALUES (?, ?, ?, ?, ?, ?)`,
			e.YearRange, e.Title, e.Company, e.Description, e.Type, e.SortOrder,
		); err != nil {
			return fmt.Errorf("failed to seed experiences: %w", err)
		}
	}

	blogs := []struct {
		Title     string
		Slug      string
		Excerpt   string
		Content   string
		Published int
	}{
		{"Cara Konfigurasi MikroTik dari Nol", "cara-konfigurasi-mikrotik", "Panduan lengkap konfigurasi MikroTik untuk pemula...", "# Cara Konfigurasi MikroTik\n\nIsi artikel di sini...", 1},
		{"Fiber Optik vs Kabel LAN Biasa", "fiber-optik-vs-kabel-lan", "Perbandingan mendalam antara fiber optik dan kabel tembaga...", "# Fiber Optik vs Kabel LAN\n\nIsi artikel di sini...", 1},
	}
	for _, b := range blogs {
		if _, err := db.DB.ExecContext(ctx,
			`INSERT INTO blogs (title, slug, excerpt, content, published) VALUES (?, ?, ?, ?, ?)`,
			b.Title, b.Slug, b.Excerpt, b.Content, b.Published,
		); err != nil {
			return fmt.Errorf("failed to seed blogs: %w", err)
		}
	}

	portfolio := []struct {
		Title       string
		Description string
		Category    string
		SortOrder   int
	}{
		{"MikroTik Lab Setup", "Konfigurasi lab jaringan lengkap dengan MikroTik", "Networking", 1},
		{"Fiber Optic Installation", "Instalasi jaringan fiber optik enterprise", "Infrastructure", 2},
		{"Training Program Design", "Desain kurikulum pelatihan ICT 40 jam", "Education", 3},
	}
	for _, p := range portfolio {
		if _, err := db.DB.ExecContext(ctx,
			`INSERT INTO portfolio (title, description, category, sort_order) VALUES (?, ?, ?, ?)`,
			p.Title, p.Description, p.Category, p.SortOrder,
		); err != nil {
			return fmt.Errorf("failed to seed portfolio: %w", err)
		}
	}

	log.Println("[DATABASE] Seed completed")
	return nil
}
