package catalog

// FormulaInfo is the reference card shown before the calculator opens.
type FormulaInfo struct {
	Title      string   `yaml:"title"`
	Latex      string   `yaml:"latex"`
	Definition string   `yaml:"definition"`
	Methods    []string `yaml:"methods"`
	Note       string   `yaml:"note,omitempty"`
}

// IsZero reports whether f is the blank placeholder.
func (f FormulaInfo) IsZero() bool {
	return f.Title == "" && f.Latex == "" && f.Definition == "" && len(f.Methods) == 0
}

var formulas = [...]FormulaInfo{
	None: {},
	SysAlgebra: {
		Title:      "Persamaan Kuadrat & Aljabar",
		Latex:      `x_{1,2} = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}`,
		Definition: "Cabang matematika yang mempelajari simbol matematika dan aturan untuk memanipulasi simbol-simbol tersebut. Fokus pada pencarian variabel yang tidak diketahui.",
		Methods: []string{
			"Identifikasi koefisien a, b, dan c.",
			"Gunakan rumus ABC jika tidak bisa difaktorkan.",
			"Sederhanakan ekspresi di dalam akar.",
			"Dapatkan dua nilai x (positif dan negatif).",
		},
		Note: "Diskriminan (D = b² - 4ac) menentukan jenis akar persamaan.",
	},
	SysTrig: {
		Title:      "Identitas Trigonometri",
		Latex:      `\sin^2(\theta) + \cos^2(\theta) = 1`,
		Definition: "Hubungan antara sudut dan sisi segitiga. Identitas dasar digunakan untuk menyederhanakan persamaan trigonometri yang kompleks.",
		Methods: []string{
			"Ubah semua fungsi ke sin dan cos jika bingung.",
			"Gunakan identitas Pythagoras.",
			"Samakan penyebut untuk penjumlahan pecahan trigono.",
		},
	},
	LimAlgebra: {
		Title:      "Definisi Limit",
		Latex:      `\lim_{x \to c} f(x) = L`,
		Definition: "Nilai yang didekati oleh fungsi f(x) saat x mendekati c, namun x tidak harus sama dengan c.",
		Methods: []string{
			"Substitusi Langsung: Masukkan nilai c ke x.",
			"Faktorisasi: Jika hasil 0/0, faktorkan pembilang/penyebut.",
			"Perkalian Sekawan: Jika ada bentuk akar dan hasil 0/0.",
		},
	},
	LimFinite: {
		Title:      "Limit Hingga",
		Latex:      `\lim_{x \to a} \frac{f(x)}{g(x)}`,
		Definition: "Mencari perilaku fungsi saat x mendekati suatu bilangan real tertentu.",
		Methods: []string{
			"Cek substitusi langsung.",
			"Jika bentuk tak tentu (0/0), gunakan L'Hopital (turunkan atas dan bawah).",
			"Atau gunakan manipulasi aljabar.",
		},
	},
	LimInfinite: {
		Title:      "Limit Tak Hingga",
		Latex:      `\lim_{x \to \infty} \frac{a_nx^n + ...}{b_mx^m + ...}`,
		Definition: "Perilaku fungsi saat x membesar tanpa batas (positif atau negatif).",
		Methods: []string{
			"Bagi semua suku dengan pangkat tertinggi dari penyebut.",
			"Jika pangkat pembilang = penyebut, hasil = koefisien pangkat tertinggi.",
			"Jika pangkat pembilang < penyebut, hasil = 0.",
			"Jika pangkat pembilang > penyebut, hasil = ∞.",
		},
	},
	LimTrig: {
		Title:      "Limit Trigonometri",
		Latex:      `\lim_{x \to 0} \frac{\sin ax}{bx} = \frac{a}{b}`,
		Definition: "Limit khusus yang melibatkan fungsi sinus, cosinus, atau tangen saat mendekati 0.",
		Methods: []string{
			"Gunakan sifat dasar lim sin(x)/x = 1.",
			"Gunakan identitas trigonometri untuk mengubah bentuk cos menjadi sin (contoh: 1 - cos 2x = 2sin²x).",
			"Pastikan variabel mendekati 0.",
		},
	},
	DerAlgebra: {
		Title:      "Aturan Pangkat Turunan",
		Latex:      `f(x) = ax^n \implies f'(x) = anx^{n-1}`,
		Definition: "Turunan mengukur sensitivitas perubahan nilai fungsi terhadap perubahan nilai inputnya (gradien).",
		Methods: []string{
			"Kalikan koefisien dengan pangkat.",
			"Kurangi pangkat dengan 1.",
			"Turunan konstanta adalah 0.",
		},
	},
	DerTrig: {
		Title:      "Turunan Trigonometri",
		Latex:      `\frac{d}{dx}(\sin x) = \cos x`,
		Definition: "Laju perubahan fungsi trigonometri pada titik tertentu.",
		Methods: []string{
			"Hafalkan turunan dasar (sin -> cos, cos -> -sin).",
			"Gunakan aturan rantai untuk sudut majemuk. Contoh: sin(2x) -> 2cos(2x).",
		},
	},
	IntArea: {
		Title:      "Integral Tentu (Luas)",
		Latex:      `\int_a^b f(x) dx = [F(x)]_a^b = F(b) - F(a)`,
		Definition: "Invers dari turunan. Integral tentu digunakan untuk menghitung luas area di bawah kurva fungsi f(x) dari x=a sampai x=b.",
		Methods: []string{
			"Cari antiturunan F(x) dari f(x).",
			"Substitusi batas atas (b) ke F(x).",
			"Substitusi batas bawah (a) ke F(x).",
			"Kurangi hasil batas atas dengan hasil batas bawah.",
		},
	},
	IntVolume: {
		Title:      "Volume Benda Putar",
		Latex:      `V = \pi \int_a^b [f(x)]^2 dx`,
		Definition: "Menghitung volume benda yang terbentuk jika suatu daerah diputar mengelilingi sumbu (biasanya sumbu x).",
		Methods: []string{
			"Identifikasi fungsi jari-jari r = f(x).",
			"Kuadratkan fungsi tersebut.",
			"Integralkan fungsi kuadrat terhadap batas a dan b.",
			"Kalikan hasil akhirnya dengan π.",
		},
	},
}

// A SubTopic added without a formula card fails to compile.
var _ = [1]struct{}{}[len(formulas)-int(subTopicCount)]

// Formula returns the reference card for s. None and unknown values yield
// the blank placeholder.
func Formula(s SubTopic) FormulaInfo {
	if !s.Valid() {
		return FormulaInfo{}
	}
	return formulas[s]
}
