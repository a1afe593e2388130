package catalog

// governorates are offered in the governorate facet in this fixed order.
var governorates = []string{
	"القاهرة", "الجيزة", "الإسكندرية", "الدقهلية", "البحر الأحمر", "البحيرة", "الفيوم", "الغربية",
	"الإسماعيلية", "المنوفية", "المنيا", "القليوبية", "الوادي الجديد", "السويس", "الشرقية",
	"دمياط", "بورسعيد", "جنوب سيناء", "كفر الشيخ", "مطروح", "الأقصر", "قنا", "شمال سيناء",
	"سوهاج", "بني سويف", "أسيوط", "أسوان",
}
