package footprint

// 每单位活动量的排放系数，单位 kg CO2e
const (
	coefMeatMeal        = 2.5
	coefVegetarianMeal  = 1.7
	coefVeganMeal       = 1.5
	coefWalkingHour     = 0.0
	coefBusHour         = 0.1
	coefTrainHour       = 0.06
	coefCarKm           = 0.2
	coefShortFlight     = 50.0
	coefLongFlight      = 150.0
	coefElectricityHour = 0.2
	coefHeatingHour     = 0.3
	coefStreamingHour   = 0.05
	coefCloudStorageGB  = 0.01
	coefGamingHour      = 0.1
)

// Sliders 对应前端滑杆采集的一周活动量。
// 数值不做校验，负数由调用方负责拦截。
type Sliders struct {
	MeatMeals        float64 `json:"meatMeals"`
	VegetarianMeals  float64 `json:"vegetarianMeals"`
	VeganMeals       float64 `json:"veganMeals"`
	WalkingHours     float64 `json:"walkingHours"`
	BusHours         float64 `json:"busHours"`
	TrainHours       float64 `json:"trainHours"`
	CarKm            float64 `json:"carKm"`
	FlightsShort     float64 `json:"flightsShort"`
	FlightsLong      float64 `json:"flightsLong"`
	ElectricityHours float64 `json:"electricityHours"`
	HeatingHours     float64 `json:"heatingHours"`
	StreamingHours   float64 `json:"streamingHours"`
	CloudStorageGB   float64 `json:"cloudStorage"`
	GamingHours      float64 `json:"gamingHours"`
}

// Breakdown 是打分结果：四个分类的周排放量及其总和，单位 kg CO2e。
type Breakdown struct {
	Diet      float64 `json:"diet"`
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
	Digital   float64 `json:"digital"`
	Total     float64 `json:"total"`
}

// Score 根据活动量计算各分类的周排放量。
// 纯函数：相同输入永远得到相同输出，不会失败。
func Score(s Sliders) Breakdown {
	diet := s.MeatMeals*coefMeatMeal +
		s.VegetarianMeals*coefVegetarianMeal +
		s.VeganMeals*coefVeganMeal

	transport := s.WalkingHours*coefWalkingHour +
		s.BusHours*coefBusHour +
		s.TrainHours*coefTrainHour +
		s.CarKm*coefCarKm +
		s.FlightsShort*coefShortFlight +
		s.FlightsLong*coefLongFlight

	energy := s.ElectricityHours*coefElectricityHour +
		s.HeatingHours*coefHeatingHour

	digital := s.StreamingHours*coefStreamingHour +
		s.CloudStorageGB*coefCloudStorageGB +
		s.GamingHours*coefGamingHour

	return Breakdown{
		Diet:      diet,
		Transport: transport,
		Energy:    energy,
		Digital:   digital,
		Total:     diet + transport + energy + digital,
	}
}
