package database

import (
	"fmt"
	"log"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Achievement{},
		&model.QuizQuestion{},
		&model.QuizResult{},
		&model.Fact{},
		&model.Planet{},
		&model.Mission{},
		&model.MissionCompletion{},
		&model.SolarSystem{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedQuestions(db)
	seedFacts(db)
	seedPlanets(db)
	seedMissions(db)

	return db, nil
}

// Seed the static content banks when empty, so a fresh deployment serves the
// full catalog without any manual import step.
func seedQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return
	}
	questions := []model.QuizQuestion{
		{Code: "q1", Type: model.QuestionMCQ, Prompt: "Which planet is known as the Red Planet?",
			Options: `["Venus","Earth","Mars","Jupiter"]`, Answer: "Mars"},
		{Code: "q2", Type: model.QuestionMCQ, Prompt: "What is the primary component of the Sun?",
			Options: `["Iron","Hydrogen","Oxygen","Carbon Dioxide"]`, Answer: "Hydrogen"},
		{Code: "q3", Type: model.QuestionText, Prompt: "Name the galaxy that contains our Solar System.",
			Answer: "Milky Way"},
		{Code: "q4", Type: model.QuestionMCQ, Prompt: "Which force keeps planets in orbit around the Sun?",
			Options: `["Magnetism","Gravity","Friction","Electricity"]`, Answer: "Gravity"},
		{Code: "q5", Type: model.QuestionMCQ, Prompt: "Which planet has the most moons?",
			Options: `["Earth","Saturn","Mercury","Venus"]`, Answer: "Saturn"},
	}
	for _, q := range questions {
		db.Create(&q)
	}
}

func seedFacts(db *gorm.DB) {
	var count int64
	db.Model(&model.Fact{}).Count(&count)
	if count > 0 {
		return
	}
	facts := []model.Fact{
		{Code: "f1", Title: "Tides and the Moon",
			Text: "The Moon's gravity exerts a tidal force on Earth that raises the oceans toward the Moon; that is why we experience high and low tides. The tidal force arises because the gravitational pull on the near side of Earth is slightly stronger than on the far side. Over long timescales, tidal interactions also slow Earth's rotation and cause the Moon to slowly recede from Earth."},
		{Code: "f2", Title: "Jupiter's Size and Role",
			Text: "Jupiter is the largest planet in the Solar System, with a mass more than twice that of all the other planets combined. Its strong gravity has influenced the orbits of smaller bodies, and it may have played a role in shielding the inner planets from some comet impacts. Jupiter's atmosphere is mostly hydrogen and helium, featuring powerful storms like the Great Red Spot."},
		{Code: "f3", Title: "Saturn's Rings",
			Text: "Saturn's rings are primarily composed of water ice with traces of rocky material; they range in size from tiny dust grains to chunks several meters across. The rings are divided into several main components and are shaped by gravitational interactions with Saturn's moons and shepherd moons that confine and sculpt ring edges."},
		{Code: "f4", Title: "Olympus Mons on Mars",
			Text: "Olympus Mons is the tallest volcano in the Solar System and rises about 22 kilometers above the Martian surface. It's a shield volcano formed by successive lava flows. Because Mars lacks active plate tectonics, volcanic activity at the same hotspot over long periods allowed such a massive structure to form."},
		{Code: "f5", Title: "The Milky Way",
			Text: "The Milky Way is a barred spiral galaxy containing between 100 and 400 billion stars; our Solar System resides roughly 27,000 light-years from the galactic center. The galaxy's structure includes a central bulge, spiral arms, and a halo populated by globular clusters."},
	}
	for _, f := range facts {
		db.Create(&f)
	}
}

func seedPlanets(db *gorm.DB) {
	var count int64
	db.Model(&model.Planet{}).Count(&count)
	if count > 0 {
		return
	}
	planets := []model.Planet{
		{Name: "Mercury", Diameter: "4,879 km", Moons: "0", DistanceFromSun: "57.9 million km", Image: "/img/mercury.png"},
		{Name: "Venus", Diameter: "12,104 km", Moons: "0", DistanceFromSun: "108.2 million km", Image: "/img/venus.png"},
		{Name: "Earth", Diameter: "12,742 km", Moons: "1", DistanceFromSun: "149.6 million km", Image: "/img/earth.png"},
		{Name: "Mars", Diameter: "6,779 km", Moons: "2", DistanceFromSun: "227.9 million km", Image: "/img/mars.png"},
		{Name: "Jupiter", Diameter: "139,820 km", Moons: "95", DistanceFromSun: "778.5 million km", Image: "/img/jupiter.png"},
		{Name: "Saturn", Diameter: "116,460 km", Moons: "146", DistanceFromSun: "1.4 billion km", Image: "/img/saturn.png"},
		{Name: "Uranus", Diameter: "50,724 km", Moons: "27", DistanceFromSun: "2.9 billion km", Image: "/img/uranus.png"},
		{Name: "Neptune", Diameter: "49,244 km", Moons: "14", DistanceFromSun: "4.5 billion km", Image: "/img/neptune.png"},
	}
	for _, p := range planets {
		db.Create(&p)
	}
}

func seedMissions(db *gorm.DB) {
	var count int64
	db.Model(&model.Mission{}).Count(&count)
	if count > 0 {
		return
	}
	missions := []model.Mission{
		{Code: "apollo11", Name: "Apollo 11", Agency: "NASA", LaunchDate: "1969-07-16",
			Summary:      "First crewed mission to land humans on the Moon and return them safely to Earth. Neil Armstrong and Buzz Aldrin walked on the lunar surface.",
			Achievements: `["First humans on the Moon","Collected lunar samples","Deployed scientific experiments"]`,
			FunFact:      "Neil Armstrong's first step was broadcast on live TV to an estimated 600 million people worldwide.",
			Image:        "/img/earth.png"},
		{Code: "voyager1", Name: "Voyager 1", Agency: "NASA", LaunchDate: "1977-09-05",
			Summary:      "A long-lived probe that explored the outer planets and is now in interstellar space, sending back data about the heliosphere.",
			Achievements: `["First detailed images of outer planets","Entered interstellar space","Golden Record onboard"]`,
			FunFact:      "Voyager 1 carries a Golden Record with sounds and images intended for any intelligent extraterrestrial life that might find it.",
			Image:        "/img/jupiter.png"},
		{Code: "curiosity", Name: "Mars Curiosity Rover", Agency: "NASA/JPL", LaunchDate: "2011-11-26",
			Summary:      "Curiosity is a car-sized rover exploring Gale Crater on Mars to investigate the planet's past habitability.",
			Achievements: `["Found evidence of ancient water","Analyzed rock chemistry","Long-lived surface operations"]`,
			FunFact:      "Curiosity used a sky crane maneuver for its landing, a first for Mars missions.",
			Image:        "/img/mars.png"},
		{Code: "cassini", Name: "Cassini-Huygens", Agency: "NASA/ESA/ASI", LaunchDate: "1997-10-15",
			Summary:      "A flagship mission to Saturn and its moons; Huygens landed on Titan to provide the first direct surface data.",
			Achievements: `["Mapped Saturn's rings","Huygens landed on Titan","Discovered active geology on Enceladus"]`,
			FunFact:      "Cassini discovered geyser-like plumes on Saturn's moon Enceladus, hinting at subsurface oceans.",
			Image:        "/img/saturn.png"},
		{Code: "hubble", Name: "Hubble Space Telescope", Agency: "NASA/ESA", LaunchDate: "1990-04-24",
			Summary:      "A space telescope that has provided deep and detailed images of distant galaxies and nebulae, revolutionizing astronomy.",
			Achievements: `["Captured deep field images","Measured cosmic expansion rate","Overhauled by service missions"]`,
			FunFact:      "Hubble helped refine the age of the universe and has been serviced multiple times by Space Shuttle missions.",
			Image:        "/img/neptune.png"},
	}
	for _, m := range missions {
		db.Create(&m)
	}
}
