package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/nnorato/portfoliobackend/models"
)

func strPtr(s string) *string { return &s }

// SeedIfEmpty populates the database with the fixed sample data set on first
// startup. The trigger is the skills table being empty; nothing happens on any
// later start.
func SeedIfEmpty(db *gorm.DB) error {
	var skillCount int64
	if err := db.Model(&models.Skill{}).Count(&skillCount).Error; err != nil {
		return fmt.Errorf("failed to count skills for seeding: %w", err)
	}
	if skillCount > 0 {
		return nil
	}

	log.Println("Empty database detected, inserting seed data...")

	skills := seedSkills()
	if err := db.Create(&skills).Error; err != nil {
		return fmt.Errorf("failed to seed skills: %w", err)
	}
	experiences := seedExperiences()
	if err := db.Create(&experiences).Error; err != nil {
		return fmt.Errorf("failed to seed experiences: %w", err)
	}
	educations := seedEducations()
	if err := db.Create(&educations).Error; err != nil {
		return fmt.Errorf("failed to seed educations: %w", err)
	}

	// projects and blog posts ride along on the same trigger, but only when
	// their tables are also untouched
	var projectCount int64
	db.Model(&models.Project{}).Count(&projectCount)
	if projectCount == 0 {
		projects := seedProjects()
		if err := db.Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to seed projects: %w", err)
		}
	}
	var postCount int64
	db.Model(&models.BlogPost{}).Count(&postCount)
	if postCount == 0 {
		posts := seedBlogPosts()
		if err := db.Create(&posts).Error; err != nil {
			return fmt.Errorf("failed to seed blog posts: %w", err)
		}
	}

	log.Println("Seed data inserted successfully.")
	return nil
}

func seedSkills() []models.Skill {
	data := []struct {
		category    string
		name        string
		proficiency int
	}{
		{"Lenguajes", "Python", 95},
		{"Lenguajes", "C#", 85},
		{"Lenguajes", "JavaScript", 80},
		{"Lenguajes", "Java", 75},
		{"Videojuegos", "Unity", 90},
		{"Videojuegos", "C# para Juegos", 88},
		{"Videojuegos", "Gamedev", 85},
		{"IA & APIs", "Integración de APIs", 90},
		{"IA & APIs", "Inteligencia Artificial", 80},
		{"IA & APIs", "ChatGPT API", 85},
		{"IA & APIs", "Machine Learning", 75},
		{"Desarrollo Web", "Flask", 88},
		{"Desarrollo Web", "HTML/CSS", 85},
		{"Desarrollo Web", "JavaScript Web", 82},
		{"Desarrollo Web", "Responsive Design", 88},
		{"Herramientas", "Git", 90},
		{"Herramientas", "GitHub", 90},
		{"Herramientas", "VS Code", 95},
		{"Herramientas", "SQL", 85},
	}

	skills := make([]models.Skill, 0, len(data))
	for i, d := range data {
		skills = append(skills, models.Skill{
			Category:    d.category,
			Name:        d.name,
			Proficiency: d.proficiency,
			Order:       i,
		})
	}
	return skills
}

func seedExperiences() []models.Experience {
	return []models.Experience{
		{
			Title:       "Cajero / Atención al Cliente",
			Company:     "ÉXITO (Los Almacenes)",
			Location:    "Bucaramanga, Colombia",
			StartDate:   "Agosto 2025",
			EndDate:     strPtr("Septiembre 2025"),
			Description: "Atención profesional al cliente, gestión de caja, control de inventario y resolución de problemas. Experiencia que desarrolló mis habilidades de comunicación, paciencia y trabajo bajo presión.",
			Order:       0,
		},
		{
			Title:       "Operario Multifuncional",
			Company:     "Cine (Cinematografía)",
			Location:    "Bucaramanga, Colombia",
			StartDate:   "Noviembre 2025",
			EndDate:     strPtr("Enero 2026"),
			Description: "Servicio al cliente, operaciones de cine, mantenimiento de instalaciones y gestión de eventos. Experiencia en ambiente dinámico que fortaleció mi adaptabilidad y capacidad de aprendizaje rápido.",
			Order:       1,
		},
		{
			Title:       "Estudiante Técnico en Sistemas & Desarrollador",
			Company:     "UTS + Proyectos Personales",
			Location:    "Bucaramanga, Colombia",
			StartDate:   "2026 - Presente",
			EndDate:     nil,
			Description: "Cursando Técnico en Sistemas en UTS mientras desarrollo proyectos personales en Python, Unity y desarrollo web. Integración de APIs de IA y participación activa en comunidades tecnológicas.",
			Order:       2,
		},
	}
}

func seedEducations() []models.Education {
	return []models.Education{
		{
			Degree:      "Técnico en Sistemas",
			Institution: "UTS (Unidades Tecnológicas de Santander)",
			Field:       "Formación Técnica en Sistemas",
			Year:        "2026",
			Description: "Formación técnica en desarrollo de sistemas, programación, redes y tecnologías de información. En curso desde enero 2026.",
			Order:       0,
		},
	}
}

func seedProjects() []models.Project {
	return []models.Project{
		{
			Title:        "Portfolio Web Personal",
			Description:  "Portfolio web moderno con diseño oscuro, modo claro/oscuro, animaciones suaves, filtros de proyectos y formulario de contacto funcional con integración de Gmail.",
			Technologies: "Python, Flask, JavaScript, CSS3, HTML5",
			GithubURL:    strPtr("https://github.com/NNorato123/paginaweb_cv"),
			Featured:     true,
			Order:        0,
		},
		{
			Title:        "Chatbot con IA (ChatGPT API)",
			Description:  "Aplicación de chatbot interactivo que integra la API de ChatGPT/OpenAI. Incluye historial de conversaciones, personalización de parámetros y múltiples modos de interacción.",
			Technologies: "Python, Flask, OpenAI API, JavaScript, SQLite",
			GithubURL:    strPtr("https://github.com/NNorato123/chatbot-ia"),
			Featured:     true,
			Order:        1,
		},
		{
			Title:        "Juego 2D en Unity",
			Description:  "Juego indie 2D desarrollado en Unity con mecánicas originales, sistemas de puntuación, interfaz gráfica interactiva y optimización de rendimiento.",
			Technologies: "Unity, C#, Blender (Modelado 3D)",
			GithubURL:    strPtr("https://github.com/NNorato123/unity-game-2d"),
			Featured:     true,
			Order:        2,
		},
		{
			Title:        "API REST de Gestor de Tareas",
			Description:  "Servicio API RESTful completo para gestión de tareas. Incluye autenticación JWT, validación de datos, documentación automática con Swagger y pruebas unitarias.",
			Technologies: "Python, Flask, PostgreSQL, JWT, Docker",
			GithubURL:    strPtr("https://github.com/NNorato123/task-api"),
			Featured:     false,
			Order:        3,
		},
		{
			Title:        "Sistema de Procesamiento de Imágenes",
			Description:  "Herramienta de procesamiento de imágenes usando APIs de IA. Detección de objetos, análisis de contenido y generación de descripciones automáticas con Vision API.",
			Technologies: "Python, OpenCV, Vision API, Flask",
			GithubURL:    strPtr("https://github.com/NNorato123/image-processor-ai"),
			Featured:     false,
			Order:        4,
		},
	}
}

func seedBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Title: "Mi Viaje en el Mundo de la Programación",
			Content: `Bienvenido a mi espacio privado de reflexiones y aprendizajes.

## Mi Historia

Comencé mi viaje en la tecnología como técnico en sistemas en la UTS. Sin experiencia previa en programación, decidí aprovechar mi tiempo en el sector de servicios (ÉXITO y cine) para desarrollar habilidades blandas mientras aprendía a programar de forma autodidacta.

## Lo que he aprendido

- **Python**: Mi lenguaje favorito para desarrollo backend
- **Desarrollo de videojuegos**: Explorando Unity y C#
- **IA e Integración de APIs**: Usando ChatGPT y OpenAI APIs
- **Desarrollo Web Full-Stack**: Con Flask, JavaScript y modernos frameworks
- **Adaptabilidad**: La clave para crecer rápido en tecnología

## Mi filosofía

Creo que el aprendizaje constante y la curiosidad son las herramientas más poderosas en tecnología. Cada proyecto es una oportunidad para crecer y resolver problemas reales.

## Siguientes metas

- Especializarme en IA y Machine Learning
- Contribuir a proyectos open-source
- Crear herramientas útiles para la comunidad
- Continuar innovando en videojuegos

¡Espero que disfrutes explorando mi portfolio! 🚀`,
			Summary: "Mi viaje en programación y aprendizaje constante",
			Order:   0,
		},
	}
}
