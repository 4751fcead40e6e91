package diagnosis

import "arogya/internal/domain"

// The static condition knowledge base. Order matters: it is the construction
// order of the vector space and the documented tie-break for equal
// similarities. Loaded once, never mutated at runtime.
func DefaultKnowledgeBase() []domain.ConditionEntry {
	return []domain.ConditionEntry{
		{Name: "Common Cold", Symptoms: []string{"runny nose", "sneezing", "sore throat", "mild cough", "congestion", "low fever"}, Urgency: domain.UrgencySelfCare, Specialist: ""},
		{Name: "Influenza (Flu)", Symptoms: []string{"high fever", "body ache", "fatigue", "dry cough", "chills", "headache"}, Urgency: domain.UrgencyRoutine, Specialist: "General Physician"},
		{Name: "COVID-19", Symptoms: []string{"fever", "dry cough", "loss of smell", "loss of taste", "fatigue", "breathing difficulty"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "General Physician"},
		{Name: "Viral Fever", Symptoms: []string{"fever", "body ache", "weakness", "headache", "loss of appetite"}, Urgency: domain.UrgencySelfCare, Specialist: ""},
		{Name: "Dengue Fever", Symptoms: []string{"high fever", "severe headache", "pain behind eyes", "joint pain", "muscle pain", "skin rash"}, Urgency: domain.UrgencyUrgent, Specialist: "General Physician"},
		{Name: "Malaria", Symptoms: []string{"fever with chills", "sweating", "headache", "nausea", "vomiting", "muscle pain"}, Urgency: domain.UrgencyUrgent, Specialist: "General Physician"},
		{Name: "Typhoid", Symptoms: []string{"prolonged fever", "weakness", "stomach pain", "headache", "loss of appetite", "constipation"}, Urgency: domain.UrgencyUrgent, Specialist: "General Physician"},
		{Name: "Chikungunya", Symptoms: []string{"fever", "severe joint pain", "muscle pain", "rash", "fatigue"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "General Physician"},
		{Name: "Tuberculosis", Symptoms: []string{"persistent cough", "coughing blood", "night sweats", "weight loss", "chest pain", "fatigue"}, Urgency: domain.UrgencyUrgent, Specialist: "Pulmonologist"},
		{Name: "Pneumonia", Symptoms: []string{"cough with phlegm", "fever", "chest pain", "breathing difficulty", "fatigue", "chills"}, Urgency: domain.UrgencyUrgent, Specialist: "Pulmonologist"},
		{Name: "Bronchitis", Symptoms: []string{"persistent cough", "mucus", "chest discomfort", "mild fever", "wheezing"}, Urgency: domain.UrgencyRoutine, Specialist: "Pulmonologist"},
		{Name: "Asthma", Symptoms: []string{"wheezing", "shortness of breath", "chest tightness", "coughing at night"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Pulmonologist"},
		{Name: "Sinusitis", Symptoms: []string{"facial pain", "blocked nose", "thick nasal discharge", "headache", "reduced smell"}, Urgency: domain.UrgencyRoutine, Specialist: "ENT Specialist"},
		{Name: "Tonsillitis", Symptoms: []string{"sore throat", "painful swallowing", "swollen tonsils", "fever", "bad breath"}, Urgency: domain.UrgencyRoutine, Specialist: "ENT Specialist"},
		{Name: "Strep Throat", Symptoms: []string{"severe sore throat", "painful swallowing", "fever", "swollen lymph nodes", "white patches on throat"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "ENT Specialist"},
		{Name: "Allergic Rhinitis", Symptoms: []string{"sneezing", "itchy eyes", "runny nose", "watery eyes", "nasal congestion"}, Urgency: domain.UrgencySelfCare, Specialist: "Allergist"},
		{Name: "Migraine", Symptoms: []string{"throbbing headache", "one sided headache", "nausea", "sensitivity to light", "sensitivity to sound", "visual aura"}, Urgency: domain.UrgencyRoutine, Specialist: "Neurologist"},
		{Name: "Tension Headache", Symptoms: []string{"dull headache", "pressure around forehead", "neck stiffness", "scalp tenderness"}, Urgency: domain.UrgencySelfCare, Specialist: ""},
		{Name: "Cluster Headache", Symptoms: []string{"severe one sided headache", "eye watering", "eye redness", "restlessness"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Neurologist"},
		{Name: "Vertigo", Symptoms: []string{"spinning sensation", "dizziness", "balance problems", "nausea"}, Urgency: domain.UrgencyRoutine, Specialist: "ENT Specialist"},
		{Name: "Hypertension", Symptoms: []string{"headache", "dizziness", "blurred vision", "nosebleed", "often no symptoms"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Cardiologist"},
		{Name: "Hypotension", Symptoms: []string{"dizziness on standing", "fainting", "fatigue", "blurred vision", "cold skin"}, Urgency: domain.UrgencyRoutine, Specialist: "General Physician"},
		{Name: "Anemia", Symptoms: []string{"fatigue", "pale skin", "shortness of breath", "dizziness", "cold hands", "brittle nails"}, Urgency: domain.UrgencyRoutine, Specialist: "Hematologist"},
		{Name: "Diabetes Type 2", Symptoms: []string{"frequent urination", "excessive thirst", "unexplained weight loss", "blurred vision", "slow healing wounds", "fatigue"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Endocrinologist"},
		{Name: "Hypoglycemia", Symptoms: []string{"shakiness", "sweating", "confusion", "rapid heartbeat", "hunger", "irritability"}, Urgency: domain.UrgencyUrgent, Specialist: "Endocrinologist"},
		{Name: "Hypothyroidism", Symptoms: []string{"weight gain", "fatigue", "cold intolerance", "dry skin", "hair loss", "constipation"}, Urgency: domain.UrgencyRoutine, Specialist: "Endocrinologist"},
		{Name: "Hyperthyroidism", Symptoms: []string{"weight loss", "rapid heartbeat", "sweating", "anxiety", "tremor", "heat intolerance"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Endocrinologist"},
		{Name: "Gastritis", Symptoms: []string{"stomach burning", "upper abdominal pain", "nausea", "bloating", "indigestion"}, Urgency: domain.UrgencyRoutine, Specialist: "Gastroenterologist"},
		{Name: "Acid Reflux (GERD)", Symptoms: []string{"heartburn", "acid taste", "chest burning", "regurgitation", "difficulty swallowing"}, Urgency: domain.UrgencyRoutine, Specialist: "Gastroenterologist"},
		{Name: "Peptic Ulcer", Symptoms: []string{"burning stomach pain", "pain on empty stomach", "bloating", "nausea", "dark stools"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Gastroenterologist"},
		{Name: "Food Poisoning", Symptoms: []string{"vomiting", "diarrhea", "stomach cramps", "nausea", "fever", "weakness"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "General Physician"},
		{Name: "Gastroenteritis", Symptoms: []string{"watery diarrhea", "stomach cramps", "nausea", "vomiting", "low fever"}, Urgency: domain.UrgencyRoutine, Specialist: "General Physician"},
		{Name: "Irritable Bowel Syndrome", Symptoms: []string{"abdominal cramps", "bloating", "alternating constipation and diarrhea", "gas", "mucus in stool"}, Urgency: domain.UrgencyRoutine, Specialist: "Gastroenterologist"},
		{Name: "Constipation", Symptoms: []string{"infrequent stools", "hard stools", "straining", "bloating", "abdominal discomfort"}, Urgency: domain.UrgencySelfCare, Specialist: ""},
		{Name: "Appendicitis", Symptoms: []string{"pain near navel moving to lower right abdomen", "fever", "nausea", "vomiting", "loss of appetite"}, Urgency: domain.UrgencyEmergency, Specialist: "Surgeon"},
		{Name: "Gallstones", Symptoms: []string{"sudden upper right abdominal pain", "back pain between shoulders", "nausea", "vomiting"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Gastroenterologist"},
		{Name: "Kidney Stones", Symptoms: []string{"severe flank pain", "pain radiating to groin", "blood in urine", "painful urination", "nausea"}, Urgency: domain.UrgencyUrgent, Specialist: "Urologist"},
		{Name: "UTI (Urinary Tract Infection)", Symptoms: []string{"burning urination", "frequent urination", "cloudy urine", "pelvic pain", "strong smelling urine"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Urologist"},
		{Name: "Jaundice", Symptoms: []string{"yellow skin", "yellow eyes", "dark urine", "pale stools", "fatigue", "itching"}, Urgency: domain.UrgencyUrgent, Specialist: "Gastroenterologist"},
		{Name: "Hepatitis A", Symptoms: []string{"fatigue", "nausea", "abdominal pain", "yellow skin", "dark urine", "loss of appetite"}, Urgency: domain.UrgencyUrgent, Specialist: "Gastroenterologist"},
		{Name: "Arthritis (Osteoarthritis)", Symptoms: []string{"joint pain", "joint stiffness", "reduced flexibility", "swelling", "grating sensation"}, Urgency: domain.UrgencyRoutine, Specialist: "Orthopedist"},
		{Name: "Rheumatoid Arthritis", Symptoms: []string{"symmetric joint pain", "morning stiffness", "joint swelling", "fatigue", "low fever"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Rheumatologist"},
		{Name: "Gout", Symptoms: []string{"sudden big toe pain", "joint redness", "joint swelling", "warmth in joint", "night pain"}, Urgency: domain.UrgencyRoutine, Specialist: "Rheumatologist"},
		{Name: "Cervical Spondylosis", Symptoms: []string{"neck pain", "neck stiffness", "shoulder pain", "tingling in arms", "headache from neck"}, Urgency: domain.UrgencyRoutine, Specialist: "Orthopedist"},
		{Name: "Lower Back Pain", Symptoms: []string{"back ache", "stiffness", "pain radiating to leg", "muscle spasm"}, Urgency: domain.UrgencySelfCare, Specialist: "Orthopedist"},
		{Name: "Sciatica", Symptoms: []string{"pain radiating down leg", "lower back pain", "numbness in leg", "tingling", "weakness in leg"}, Urgency: domain.UrgencyRoutine, Specialist: "Orthopedist"},
		{Name: "Conjunctivitis", Symptoms: []string{"red eyes", "itchy eyes", "eye discharge", "gritty feeling", "watering eyes"}, Urgency: domain.UrgencySelfCare, Specialist: "Ophthalmologist"},
		{Name: "Dry Eye Syndrome", Symptoms: []string{"eye dryness", "burning eyes", "blurred vision", "eye fatigue", "light sensitivity"}, Urgency: domain.UrgencySelfCare, Specialist: "Ophthalmologist"},
		{Name: "Ear Infection", Symptoms: []string{"ear pain", "ear discharge", "hearing difficulty", "fever", "ear fullness"}, Urgency: domain.UrgencyRoutine, Specialist: "ENT Specialist"},
		{Name: "Dental Abscess", Symptoms: []string{"severe toothache", "swollen jaw", "fever", "sensitivity to hot and cold", "bad taste"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Dentist"},
		{Name: "Eczema", Symptoms: []string{"itchy skin", "dry skin", "red patches", "skin thickening", "oozing blisters"}, Urgency: domain.UrgencySelfCare, Specialist: "Dermatologist"},
		{Name: "Psoriasis", Symptoms: []string{"scaly skin patches", "itching", "silvery scales", "cracked skin", "nail pitting"}, Urgency: domain.UrgencyRoutine, Specialist: "Dermatologist"},
		{Name: "Fungal Skin Infection", Symptoms: []string{"ring shaped rash", "itching", "scaly skin", "redness", "cracked skin between toes"}, Urgency: domain.UrgencySelfCare, Specialist: "Dermatologist"},
		{Name: "Scabies", Symptoms: []string{"intense itching at night", "thin burrow tracks", "rash between fingers", "small blisters"}, Urgency: domain.UrgencyRoutine, Specialist: "Dermatologist"},
		{Name: "Chickenpox", Symptoms: []string{"itchy blisters", "fever", "fatigue", "loss of appetite", "rash spreading over body"}, Urgency: domain.UrgencyRoutine, Specialist: "General Physician"},
		{Name: "Depression", Symptoms: []string{"persistent sadness", "loss of interest", "sleep changes", "fatigue", "worthlessness", "difficulty concentrating"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Psychiatrist"},
		{Name: "Anxiety Disorder", Symptoms: []string{"excessive worry", "restlessness", "rapid heartbeat", "sweating", "trouble sleeping", "irritability"}, Urgency: domain.UrgencyDoctorSoon, Specialist: "Psychiatrist"},
		{Name: "Insomnia", Symptoms: []string{"difficulty falling asleep", "waking at night", "daytime tiredness", "irritability", "poor concentration"}, Urgency: domain.UrgencyRoutine, Specialist: "Psychiatrist"},
		{Name: "Heat Stroke", Symptoms: []string{"high body temperature", "hot dry skin", "confusion", "rapid pulse", "headache", "no sweating"}, Urgency: domain.UrgencyEmergency, Specialist: ""},
		{Name: "Dehydration", Symptoms: []string{"extreme thirst", "dark urine", "dizziness", "dry mouth", "fatigue", "reduced urination"}, Urgency: domain.UrgencyDoctorSoon, Specialist: ""},
	}
}
