package solver

import (
	"fmt"
	"strings"

	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/llm"
)

const systemPromptTemplate = `Anda adalah dosen/tutor Kalkulus cerdas di Departemen Pendidikan Ilmu Komputer FPMIPA UPI.

INSTRUKSI PENYELESAIAN:
1. Bahasa: Gunakan Bahasa Indonesia yang baku, jelas, dan edukatif untuk field 'explanation'.

2. Logika Penyelesaian (PENTING):
   - LIMIT:
     a. Langkah pertama HARUS substitusi langsung.
     b. Jika hasil substitusi adalah 0/0 atau ∞/∞ (Bentuk Tak Tentu):
        - Jelaskan bahwa hasilnya adalah "Bentuk Tak Tentu".
        - GUNAKAN METODE LAIN: Faktorisasi, Kali Sekawan (Rasionalkan Akar), atau Dalil L'Hopital (Turunan).
        - Pilih metode yang paling standar diajarkan di perkuliahan dasar.
        - Tampilkan proses penyederhanaannya.
        - Lakukan substitusi ulang sampai mendapatkan hasil valid (bukan 0/0).
   - INTEGRAL:
     - Jika ada batas, hitung antiturunan F(x) terlebih dahulu, lalu hitung F(b) - F(a).
     - Tampilkan teknik integrasi (substitusi, parsial) jika diperlukan.
   - TURUNAN: Sebutkan aturan yang digunakan (Aturan Rantai, Perkalian, Pembagian).

3. Format Langkah (Steps):
   - Pecah solusi menjadi tahapan yang sangat rinci.
   - Untuk SETIAP langkah, kembalikan objek dengan:
     - 'explanation': Penjelasan langkah dalam Bahasa Indonesia. Contoh: "Karena hasilnya 0/0, kita faktorkan pembilang", "Hitung nilai batas atas dikurangi batas bawah".
     - 'result': Hasil matematis dari langkah tersebut dalam format LaTeX yang valid.

4. Format LaTeX:
   - Field 'result' dan 'latexResult' HARUS berisi kode LaTeX murni tanpa markdown code block.
   - Jangan gunakan tanda $ di awal/akhir untuk field 'result' dan 'latexResult', cukup kode LaTeX-nya saja.
   - Pastikan simbol matematika (integral \int, limit \lim, pecahan \frac, akar \sqrt) digunakan dengan benar.

5. Visualisasi Grafik (AKURAT & DETAIL):
   - Generate %d titik koordinat (x, y) untuk fungsi tersebut agar grafik terlihat mulus dan detail.
   - Range x default: -10 sampai 10. Namun, jika ada domain khusus (misal ln(x), sqrt(x)), sesuaikan range agar grafik valid.
   - Pastikan mencakup titik-titik krusial seperti perpotongan sumbu-x (akar), sumbu-y, dan titik stasioner.

Kembalikan respon HANYA dalam format JSON yang valid sesuai schema.`

const definiteIntegralInstruction = "Ini adalah INTEGRAL TENTU. Pastikan menghitung nilai akhirnya berdasarkan batas yang diberikan."

const genericTask = "Selesaikan soal matematika ini."

var taskDescriptions = map[catalog.SubTopic]string{
	catalog.SysAlgebra:  "Sederhanakan atau selesaikan ekspresi aljabar.",
	catalog.SysTrig:     "Sederhanakan atau selesaikan ekspresi trigonometri.",
	catalog.LimAlgebra:  "Cari nilai limit fungsi aljabar.",
	catalog.LimFinite:   "Cari nilai limit mendekati nilai hingga.",
	catalog.LimInfinite: "Cari nilai limit mendekati tak hingga.",
	catalog.LimTrig:     "Cari nilai limit fungsi trigonometri.",
	catalog.DerAlgebra:  "Cari turunan dari fungsi aljabar.",
	catalog.DerTrig:     "Cari turunan dari fungsi trigonometri.",
	catalog.IntArea:     "Hitung integral tentu/tak tentu (Luas Daerah).",
	catalog.IntVolume:   "Hitung integral untuk Volume Benda Putar (asumsikan putaran sumbu-x kecuali spesifik).",
}

// TaskDescription returns the task line sent for sub, falling back to a
// generic instruction for unknown sub-topics.
func TaskDescription(sub catalog.SubTopic) string {
	if t, ok := taskDescriptions[sub]; ok {
		return t
	}
	return genericTask
}

// systemPrompt renders the tutor persona and solving policy.
func systemPrompt(cfg Config) string {
	points := cfg.GraphPoints
	if points <= 0 {
		points = DefaultConfig().GraphPoints
	}
	return fmt.Sprintf(systemPromptTemplate, points)
}

// promptExpression rewrites the expression to carry integration bounds
// when the sub-topic is an Integral and at least one bound is set.
// The second return value reports whether the rewrite happened.
func promptExpression(in Input) (string, bool) {
	if in.SubTopic.Topic() != catalog.TopicIntegral || in.Bounds == nil || in.Bounds.IsZero() {
		return in.Expression, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Integral dari %s", in.Expression)
	if in.Bounds.Lower != "" {
		fmt.Fprintf(&b, " dengan batas bawah %s", in.Bounds.Lower)
	}
	if in.Bounds.Upper != "" {
		fmt.Fprintf(&b, " dan batas atas %s", in.Bounds.Upper)
	}
	return b.String(), true
}

// buildUserMessage constructs the user message for a single solve.
func buildUserMessage(in Input) string {
	expr, definite := promptExpression(in)

	var b strings.Builder
	fmt.Fprintf(&b, "TUGAS: %s\n", TaskDescription(in.SubTopic))
	fmt.Fprintf(&b, "SOAL INPUT: \"%s\"\n", expr)
	if definite {
		b.WriteString("\n")
		b.WriteString(definiteIntegralInstruction)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildRequest turns a solve input into a provider request.
func BuildRequest(in Input, cfg Config) llm.Request {
	return llm.Request{
		System:      systemPrompt(cfg),
		Prompt:      buildUserMessage(in),
		Schema:      SolveSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
}

// Preview renders the LaTeX shown above the keypad while an Integral is
// being typed. Empty fields show as a, b and f(x). Non-integral
// sub-topics have no preview.
func Preview(expr string, sub catalog.SubTopic, b Bounds) string {
	if sub.Topic() != catalog.TopicIntegral {
		return ""
	}
	lower := b.Lower
	if lower == "" {
		lower = "a"
	}
	upper := b.Upper
	if upper == "" {
		upper = "b"
	}
	val := strings.TrimSpace(expr)
	if val == "" {
		val = "f(x)"
	}

	if sub == catalog.IntVolume {
		return fmt.Sprintf(`V = \pi \int_{%s}^{%s} \left[ %s \right]^2 \, dx`, lower, upper, val)
	}
	return fmt.Sprintf(`\int_{%s}^{%s} %s \, dx`, lower, upper, val)
}
