package chat

import "strings"

// FallbackGuide returns the fixed emergency protocol for a disaster type.
// Used when the model is unreachable so emergency guidance is never lost.
func FallbackGuide(disasterType string) string {
	if guide, ok := fallbackGuides[strings.ToLower(strings.TrimSpace(disasterType))]; ok {
		return guide
	}
	return genericGuide
}

var fallbackGuides = map[string]string{
	"earthquake": `🚨 **EARTHQUAKE EMERGENCY PROTOCOL** 🚨

**IMMEDIATE ACTIONS (RIGHT NOW):**
1. **DROP** to hands and knees immediately
2. **TAKE COVER** under sturdy desk/table or against interior wall
3. **HOLD ON** and protect your head and neck with arms
4. Stay where you are until shaking completely stops
5. Count to 60 after shaking stops before moving

**AFTER SHAKING STOPS:**
• Check yourself and others for injuries
• Look for hazards: gas leaks, electrical damage, structural damage
• Be ready for aftershocks (can be as strong as main quake)
• Use stairs only - NEVER elevators
• Stay out of damaged buildings
• Turn off gas if you smell leaks

**WHAT TO AVOID:**
• Don't run outside during shaking
• Don't stand in doorways
• Don't use elevators
• Don't light matches if you smell gas
• Don't use phone unless emergency`,

	"flood": `🚨 **FLOOD EMERGENCY PROTOCOL** 🚨

**IMMEDIATE ACTIONS (RIGHT NOW):**
1. Move to higher ground IMMEDIATELY - don't wait
2. If evacuation is ordered, LEAVE NOW
3. Never drive through flooded roads
4. Avoid walking in moving water (6 inches can knock you down)
5. Stay away from downed power lines

**FLOOD WATER DANGERS:**
• Contains sewage, chemicals, and dangerous debris
• May be electrically charged from downed power lines
• Can hide holes, objects, and washouts
• Moves faster and is deeper than it appears

**WHAT TO AVOID:**
• Never drive through flooded streets ("Turn Around, Don't Drown")
• Don't walk in flowing water
• Don't touch electrical equipment if standing in water
• Don't drink flood water`,

	"fire": `🚨 **FIRE EMERGENCY PROTOCOL** 🚨

**IMMEDIATE ACTIONS (RIGHT NOW):**
1. If evacuation is ordered, LEAVE IMMEDIATELY
2. Grab your pre-packed emergency "Go Bag"
3. Close all doors and windows behind you (don't lock)
4. Follow multiple evacuation routes away from fire
5. Call 911 from safe location to report your status

**SMOKE PROTECTION:**
• Stay indoors with windows/doors closed if not evacuating
• Use air conditioning on recirculate mode
• Use N95 masks when going outside
• Monitor air quality reports

**WHAT TO AVOID:**
• Don't delay evacuation to save belongings
• Don't open hot doors
• Don't hide from firefighters`,
}

const genericGuide = `🚨 **EMERGENCY SAFETY GUIDANCE** 🚨

**1. SECURE YOUR IMMEDIATE AREA:**
• Move to the safest room (interior room, lowest floor if possible)
• Stay away from windows, glass, and heavy objects that could fall
• Keep clear pathways to exits

**2. GATHER EMERGENCY SUPPLIES NOW:**
• Flashlight and extra batteries (avoid candles)
• Battery-powered or hand-crank radio
• First aid kit and any medications you need
• Water - at least 1 gallon per person per day for 3 days
• Non-perishable food for at least 3 days
• Cell phone with chargers and backup battery

**3. COMMUNICATION & SAFETY:**
• Establish an out-of-area contact person
• Keep emergency numbers readily available
• Listen to official emergency broadcasts
• Follow evacuation orders immediately if given

**⚠️ CALL 911 IMMEDIATELY IF:**
• You are in immediate physical danger
• Someone is seriously injured
• You smell gas or see downed power lines
• You see fire or flooding approaching`
