package constant

// RecallDistricts lists the electoral districts subject to the 2025 recall
// referendum. When listing legislator-category districts without a search
// query, the listing is restricted to these. Kept as a seed default; the
// importer may override it through the property table (key
// PropertyRecallDistricts).
var RecallDistricts = []string{
	"臺東縣第01選區", "臺北市第08選區", "臺北市第07選區", "臺北市第06選區",
	"臺北市第04選區", "臺北市第03選區", "臺中市第08選區", "臺中市第06選區",
	"臺中市第05選區", "臺中市第04選區", "臺中市第03選區", "臺中市第02選區",
	"彰化縣第03選區", "新竹縣第02選區", "新竹縣第01選區", "新竹市第01選區",
	"新北市第09選區", "新北市第08選區", "新北市第07選區", "新北市第12選區",
	"新北市第11選區", "新北市第01選區", "雲林縣第01選區", "基隆市第01選區",
	"桃園市第06選區", "桃園市第05選區", "桃園市第04選區", "桃園市第03選區",
	"桃園市第02選區", "桃園市第01選區", "苗栗縣第02選區", "苗栗縣第01選區",
	"南投縣第02選區", "南投縣第01選區", "花蓮縣第01選區",
}

const PropertyRecallDistricts = "recall_districts"
