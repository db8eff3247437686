package knowledge

// entries returns the shipped knowledge table. Keywords are lowercase by
// contract; NewBase rejects anything else. Response bodies are markdown
// documents the section extractor slices per intent, so heading wording
// matters: procedure sections say "How to", punishment sections say
// "Punishment", and so on.
func entries() []Entry {
	return []Entry{
		{
			Keywords: []string{"hello", "hi", "hey", "namaste", "good morning", "good evening", "help", "what can you do"},
			Category: GreetingCategory,
			Response: `# Welcome to Nyaya AI

Namaste! I am a legal information assistant for Indian law. I can explain
procedures, rights, and remedies across these areas:

- Criminal law: FIR, arrest, bail
- Constitutional rights and police harassment
- Family law: divorce, maintenance, custody
- Domestic violence and dowry harassment
- Property disputes and registration
- Inheritance and succession
- Employment and unpaid salary
- Consumer complaints and refunds
- Education and student rights
- Cyber crime and online fraud
- Cheque bounce and money recovery
- Tenant and landlord issues

Ask me a question in English or Hindi, for example:
- "How do I file an FIR?"
- "What are the grounds for divorce?"
- "My landlord is not returning my deposit"

**Note:** I provide general legal information, not legal advice. For advice on
your specific situation, please consult a qualified advocate.`,
			Citations: nil,
		},
		{
			Keywords: []string{"fir", "file fir", "police complaint", "crime", "criminal case", "arrest", "bail", "police station", "zero fir", "chargesheet"},
			Category: "Criminal Law",
			Response: `# FIR and Criminal Complaints

An FIR (First Information Report) is the document that sets the criminal law
in motion. The police must register it for any cognizable offence.

## What is a Cognizable Offence?

A cognizable offence is one where police can arrest without a warrant, such as
theft, assault, or cheating. For non-cognizable offences the police record a
complaint and you approach the Magistrate directly.

## How to File an FIR

1. Go to the police station with jurisdiction over the place of offence.
2. Narrate the incident orally or hand over a written complaint.
3. The officer must reduce an oral complaint to writing and read it back to you.
4. Sign the FIR only after verifying the contents are accurate.
5. Collect a free copy of the FIR. This is your right under Section 154(2) CrPC.
6. Note the FIR number, date, and the sections applied.

You can file a Zero FIR at any police station regardless of jurisdiction; the
station must register it and transfer it to the correct station.

### What if Police Refuses to Register FIR?

1. Send your complaint in writing to the Superintendent of Police by post
   under Section 154(3) CrPC.
2. If the SP also fails to act, file an application before the Magistrate
   under Section 156(3) CrPC directing the police to register the FIR.
3. Refusal to register an FIR for a cognizable offence is itself an offence
   under Section 166A IPC, punishable with imprisonment up to two years.
4. You may also file a complaint with the State Human Rights Commission.

## Arrest and Bail Basics

- An arrested person must be produced before a Magistrate within 24 hours.
- For bailable offences, bail is a matter of right at the police station itself.
- For non-bailable offences, apply for bail before the Magistrate or Sessions
  Court; anticipatory bail is available under Section 438 CrPC.

## Documents Required

- Written complaint with date, time, and place of the incident
- Identity proof of the complainant
- Any evidence available: photos, medical reports, witness names

---

**Legal Citations:**
- Code of Criminal Procedure, 1973: Sections 154, 156(3), 438
- Indian Penal Code, 1860: Section 166A
- Lalita Kumari v. Government of Uttar Pradesh (2014) 2 SCC 1`,
			Citations: []string{
				"Code of Criminal Procedure, 1973, Section 154",
				"Code of Criminal Procedure, 1973, Section 156(3)",
				"Indian Penal Code, 1860, Section 166A",
				"Lalita Kumari v. Government of Uttar Pradesh (2014) 2 SCC 1",
			},
		},
		{
			Keywords: []string{"fundamental rights", "police harassment", "illegal detention", "rights violation", "human rights", "threatening", "custodial torture", "false case"},
			Category: "Constitutional Rights",
			Response: `# Your Rights Against Police Harassment

The Constitution protects you even when you are a suspect. No police officer
may threaten, detain, or assault you outside the procedure established by law.

## Your Fundamental Rights

- Article 21 guarantees life and personal liberty; it covers freedom from
  custodial violence and illegal detention.
- Article 22 requires that an arrested person be told the grounds of arrest
  and be produced before a Magistrate within 24 hours.
- Article 20(3) protects you from being compelled to be a witness against
  yourself.
- The D.K. Basu guidelines require officers to wear visible name tags and to
  prepare an arrest memo attested by a witness.

## Remedies Against Police Harassment

1. File a written complaint with the Superintendent of Police describing each
   incident with date and time.
2. Approach the State Human Rights Commission or the NHRC; they can summon
   officers and award compensation.
3. File a writ petition under Article 226 before the High Court for illegal
   detention or continued harassment.
4. A habeas corpus petition is the fastest remedy when someone is detained
   without being produced before a Magistrate.
5. Custodial torture can be prosecuted under Sections 330 and 331 IPC.

## Protection for Women

- A woman cannot be called to a police station for questioning; under
  Section 160 CrPC she must be questioned at her residence.
- A woman cannot be arrested after sunset and before sunrise except with a
  Magistrate's special order.

---

**Legal Citations:**
- Constitution of India: Articles 20, 21, 22, 226
- D.K. Basu v. State of West Bengal (1997) 1 SCC 416
- Code of Criminal Procedure, 1973: Section 160`,
			Citations: []string{
				"Constitution of India, Articles 20, 21, 22",
				"D.K. Basu v. State of West Bengal (1997) 1 SCC 416",
				"Code of Criminal Procedure, 1973, Section 160",
			},
		},
		{
			Keywords: []string{"divorce", "mutual consent divorce", "alimony", "maintenance", "child custody", "marriage", "separation", "talaq"},
			Category: "Family Law",
			Response: `# Divorce and Matrimonial Relief

Divorce in India is governed by personal law: the Hindu Marriage Act for
Hindus, the Special Marriage Act for civil marriages, and corresponding
statutes for other communities.

## Grounds for Divorce

Under Section 13 of the Hindu Marriage Act: cruelty, desertion for two years,
adultery, conversion, unsoundness of mind, and mutual consent. Cruelty
includes sustained mental cruelty, not only physical violence.

## Procedure for Mutual Consent Divorce

1. Both spouses jointly file a petition under Section 13B in the family court
   after living separately for at least one year.
2. The court records statements and grants the first motion.
3. A cooling-off period of 6 months follows; the Supreme Court may waive it
   where reconciliation is impossible.
4. On the second motion the court passes the decree of divorce.
5. The entire process usually takes 6 to 18 months.

## Maintenance and Alimony

- Either spouse can claim maintenance under Section 24 of the Hindu Marriage
  Act during proceedings.
- A wife, children, and parents can claim monthly maintenance under
  Section 125 CrPC regardless of religion.
- Permanent alimony is decided on income, conduct, and duration of marriage.

## Child Custody

Courts decide custody on the welfare of the child, not the rights of parents.
Custody of a child under five ordinarily goes to the mother. The other parent
normally receives visitation rights.

---

**Legal Citations:**
- Hindu Marriage Act, 1955: Sections 13, 13B, 24
- Code of Criminal Procedure, 1973: Section 125
- Special Marriage Act, 1954`,
			Citations: []string{
				"Hindu Marriage Act, 1955, Sections 13, 13B, 24",
				"Code of Criminal Procedure, 1973, Section 125",
				"Special Marriage Act, 1954",
			},
		},
		{
			Keywords: []string{"domestic violence", "dowry", "dowry harassment", "498a", "cruelty", "protection order", "women safety", "in-laws harassment"},
			Category: "Women & Family Safety",
			Response: `# Domestic Violence and Dowry Harassment

The law gives a woman facing cruelty at her matrimonial home both criminal
and civil remedies, and she may pursue them simultaneously.

## Criminal Remedy: Section 498A IPC

Cruelty by a husband or his relatives is punishable under Section 498A IPC
with imprisonment up to three years and a fine. Cruelty covers dowry demands,
physical violence, and conduct driving the woman to injure herself.

Demanding dowry is separately punishable under the Dowry Prohibition Act,
1961, with imprisonment of not less than five years.

## Civil Remedy: Protection of Women from Domestic Violence Act

1. File an application before the Magistrate through a Protection Officer or
   directly.
2. The court can pass a protection order, a residence order securing your
   right to live in the shared household, and monetary relief.
3. Interim orders can be passed at the first hearing itself.
4. Breach of a protection order is a criminal offence.

## How to File a Complaint

1. Approach the nearest police station or a Protection Officer; every
   district has one under the Domestic Violence Act.
2. A complaint under Section 498A IPC can be filed by the woman or any
   relative on her behalf.
3. Keep medical records, photographs of injuries, and written dowry demands
   as evidence.

---

**Legal Citations:**
- Indian Penal Code, 1860: Section 498A
- Protection of Women from Domestic Violence Act, 2005
- Dowry Prohibition Act, 1961: Sections 3, 4`,
			Citations: []string{
				"Indian Penal Code, 1860, Section 498A",
				"Protection of Women from Domestic Violence Act, 2005",
				"Dowry Prohibition Act, 1961, Sections 3 and 4",
			},
		},
		{
			Keywords: []string{"property dispute", "land dispute", "encroachment", "property registration", "sale deed", "illegal possession", "land records", "stamp duty"},
			Category: "Property Law",
			Response: `# Property Disputes and Registration

Property disputes are civil matters decided on documents and possession;
police rarely have jurisdiction unless cheating or trespass is involved.

## Resolving a Property Dispute

1. Collect the title chain: sale deeds, mutation entries, tax receipts, and
   the encumbrance certificate.
2. Send a legal notice to the opposite party stating your claim.
3. File a civil suit for declaration of title and possession before the civil
   court where the property is situated.
4. Seek a temporary injunction under Order 39 CPC to freeze the status quo
   while the suit is pending.
5. Criminal trespass under Section 441 IPC applies when someone enters with
   intent to intimidate or annoy the possessor.

## Encroachment Remedies

- For encroachment on private land, a suit for possession and mandatory
  injunction is the primary remedy.
- For encroachment on public land, complain to the municipal authority or
  Tehsildar, who have summary eviction powers.

## How to Register Property

1. Verify the seller's title and obtain an encumbrance certificate.
2. Pay stamp duty per your state's schedule; registration fee is typically
   one percent.
3. Execute the sale deed before the Sub-Registrar with two witnesses.
4. Apply for mutation in municipal or revenue records after registration.
5. Registration is compulsory for any sale of immovable property above one
   hundred rupees under Section 17 of the Registration Act.

---

**Legal Citations:**
- Registration Act, 1908: Section 17
- Transfer of Property Act, 1882
- Code of Civil Procedure, 1908: Order 39`,
			Citations: []string{
				"Registration Act, 1908, Section 17",
				"Transfer of Property Act, 1882",
				"Code of Civil Procedure, 1908, Order 39",
			},
		},
		{
			Keywords: []string{"inheritance", "succession", "will", "legal heir", "succession certificate", "ancestral property", "probate", "nominee", "intestate"},
			Category: "Inheritance & Succession",
			Response: `# Inheritance and Succession

Inheritance law depends on religion, on whether the deceased left a will, and
on the kind of property. Ask about your specific situation and I will explain
the exact steps.

## 🎯 **SCENARIO 1: Succession Certificate**

A succession certificate lets heirs collect debts, bank deposits, and
securities of the deceased.

1. File a petition before the District Judge where the deceased resided.
2. Annex the death certificate and the legal heir list.
3. The court publishes a notice inviting objections for 45 days.
4. Court fee is a percentage of the asset value, capped by state rules.
5. The certificate usually issues in 3 to 6 months if uncontested.

## 🎯 **SCENARIO 2: Death Without a Will (Intestate)**

1. For a Hindu male, property devolves equally on Class I heirs: widow,
   children, and mother, under Section 8 of the Hindu Succession Act.
2. For a Hindu female, property devolves under Section 15, first on husband
   and children.
3. Heirs should obtain a legal heir certificate and then apply for mutation.

## 🎯 **SCENARIO 3: Death With a Will (Probate)**

1. The executor named in the will applies for probate before the High Court
   or District Judge.
2. Probate is mandatory for wills made in Kolkata, Mumbai, and Chennai.
3. A registered will is not compulsory but is harder to challenge.

## 🎯 **SCENARIO 4: Daughter's Share**

1. After the 2005 amendment, a daughter is a coparcener by birth with the
   same rights as a son in ancestral property.
2. The Supreme Court in Vineeta Sharma confirmed this applies even if the
   father died before 2005.
3. A married daughter's rights are identical to an unmarried daughter's.

## 🎯 **SCENARIO 5: Widow's Share**

1. A widow is a Class I heir and takes an equal share with children.
2. Remarriage does not divest her of property already vested.
3. She can claim maintenance from the estate until partition.

## 🎯 **SCENARIO 6: Ancestral Property**

1. Ancestral property is property inherited undivided through four
   generations of the male line.
2. A coparcener's share arises by birth; a father cannot will away the whole.
3. Partition can be demanded by any coparcener at any time.

## 🎯 **SCENARIO 7: Self-Acquired Property**

1. Self-acquired property can be willed to anyone; children have no birth
   right in it.
2. If the owner dies intestate it devolves on Class I heirs equally.

## 🎯 **SCENARIO 8: Legal Heir Certificate**

1. Apply to the Tehsildar or taluk office with the death certificate.
2. Used for service benefits, pension, and mutation; it is not conclusive
   proof of title.
3. Usually issued within 30 days after a field inquiry.

## 🎯 **SCENARIO 9: Nominee vs Heir**

1. A nominee is only a trustee who receives the asset for the legal heirs.
2. Heirs under succession law beat the nominee in a title contest, except
   for specific statutes that vest ownership in the nominee.

## 🎯 **SCENARIO 10: Mutation After Death**

1. Apply to the municipal or revenue office with the death certificate and
   legal heir certificate.
2. Mutation records possession for tax purposes; it does not confer title.

## 🎯 **SCENARIO 11: Agricultural Land**

1. Devolution of agricultural land can follow state tenurial laws.
2. Some states restrict transfer of agricultural land to non-agriculturists.

## 🎯 **SCENARIO 12: Muslim Law**

1. Muslim inheritance follows the Quranic shares; a will can cover only one
   third of the estate without heirs' consent.
2. A son takes double the share of a daughter; the widow takes one eighth
   when there are children.

---

**Legal Citations:**
- Hindu Succession Act, 1956: Sections 8, 10, 15
- Indian Succession Act, 1925: Part X
- Vineeta Sharma v. Rakesh Sharma (2020) 9 SCC 1`,
			Citations: []string{
				"Hindu Succession Act, 1956, Sections 8, 10, 15",
				"Indian Succession Act, 1925, Part X",
				"Vineeta Sharma v. Rakesh Sharma (2020) 9 SCC 1",
			},
		},
		{
			Keywords: []string{"salary", "unpaid salary", "employer", "termination", "gratuity", "provident fund", "workplace", "labour court", "notice period"},
			Category: "Employment Law",
			Response: `# Employment and Salary Disputes

Indian labour law splits employees into "workmen" covered by the Industrial
Disputes Act and others governed by their contracts, but salary recovery
remedies exist for both.

## Recovery of Unpaid Salary

1. Send a written demand to the employer and HR, keeping proof of delivery.
2. Employees drawing wages within the Payment of Wages Act limit can file
   before the Authority under Section 15; the claim must be filed within 12
   months of the deduction.
3. Workmen can raise an industrial dispute or apply under Section 33C(2) of
   the Industrial Disputes Act for money due.
4. Other employees file a civil suit for recovery, or a company petition if
   the employer is a company that admits the debt.
5. Approach the labour commissioner for conciliation; many disputes settle
   at this stage.

## Wrongful Termination

- A workman with 240 days of continuous service cannot be retrenched without
  notice, retrenchment compensation, and government permission where
  applicable.
- Termination in violation of the contract's notice clause entitles you to
  pay in lieu of notice.

## Gratuity and Provident Fund

- Gratuity is payable after five years of continuous service at 15 days'
  wages per completed year, under the Payment of Gratuity Act.
- PF dues can be pursued through the EPFO grievance portal; withholding PF
  contributions is a criminal offence.

---

**Legal Citations:**
- Payment of Wages Act, 1936: Section 15
- Industrial Disputes Act, 1947: Sections 25F, 33C
- Payment of Gratuity Act, 1972`,
			Citations: []string{
				"Payment of Wages Act, 1936, Section 15",
				"Industrial Disputes Act, 1947, Sections 25F and 33C",
				"Payment of Gratuity Act, 1972",
			},
		},
		{
			Keywords: []string{"consumer complaint", "refund", "defective product", "warranty", "online shopping", "consumer court", "replacement", "deficiency in service"},
			Category: "Consumer Protection",
			Response: `# Consumer Complaints and Refunds

The Consumer Protection Act, 2019 covers goods and services, including
e-commerce purchases, and gives a three-tier forum system with simple
procedure and no compulsory lawyer.

## How to File a Consumer Complaint

1. Send a written complaint to the seller or service provider demanding the
   refund, replacement, or repair, with a 15 day deadline.
2. If ignored, file before the District Commission for claims up to 50 lakh,
   the State Commission up to 2 crore, and the National Commission above it.
3. Complaints can be filed online through the e-daakhil portal.
4. File where you reside or work, not only where the seller is located.
5. Limitation is two years from the cause of action.

## Refund and Replacement Rights

- A defective product entitles you to replacement or a full refund, plus
  compensation for loss.
- For online orders, e-commerce rules require sellers to accept returns of
  defective goods and bar fake reviews and dark patterns.
- A warranty claim cannot be refused for buying from an online channel.

## Fees and Timeline

- No court fee for claims up to 5 lakh.
- Commissions aim to decide within 3 months where no analysis of goods is
  needed.

---

**Legal Citations:**
- Consumer Protection Act, 2019: Sections 2(42), 34, 35
- Consumer Protection (E-Commerce) Rules, 2020`,
			Citations: []string{
				"Consumer Protection Act, 2019, Sections 34 and 35",
				"Consumer Protection (E-Commerce) Rules, 2020",
			},
		},
		{
			Keywords: []string{"school", "teacher", "corporal punishment", "student rights", "admission", "school fees", "ragging", "rte"},
			Category: "Education Law",
			Response: `# Student Rights and School Issues

Children have a statutory right to education and to dignity inside the
school. Schools and teachers face both regulatory and criminal consequences
for violating them.

## Corporal Punishment is Banned

Section 17 of the Right to Education Act prohibits physical punishment and
mental harassment of children in school. No circumstance justifies a teacher
beating a student.

## Punishment for a Teacher Who Beats a Child

1. Simple hurt is punishable under Section 323 IPC with imprisonment up to
   one year.
2. Grievous hurt, such as a fracture, is punishable under Section 325 IPC
   with imprisonment up to seven years.
3. Section 75 of the Juvenile Justice Act punishes cruelty to a child by a
   person with care of the child, with imprisonment up to three years.
4. The school must also act departmentally; report to the principal and the
   management in writing.
5. File a complaint with the District Education Officer and the State
   Commission for Protection of Child Rights.

## How to Complain

1. Get a medical examination of the child immediately and preserve the
   report.
2. File an FIR at the local police station under Sections 323 or 325 IPC and
   Section 75 of the JJ Act.
3. Complain in writing to the school management and the education department.

## Admission and Fees

- The RTE Act reserves 25 percent of entry-level seats in private schools
  for economically weaker sections.
- Capitation fees are prohibited; several states cap fee increases through
  fee regulation committees.

---

**Legal Citations:**
- Right of Children to Free and Compulsory Education Act, 2009: Section 17
- Indian Penal Code, 1860: Sections 323, 325
- Juvenile Justice (Care and Protection of Children) Act, 2015: Section 75`,
			Citations: []string{
				"Right to Education Act, 2009, Section 17",
				"Indian Penal Code, 1860, Sections 323 and 325",
				"Juvenile Justice Act, 2015, Section 75",
			},
		},
		{
			Keywords: []string{"cyber crime", "online fraud", "hacking", "upi fraud", "otp fraud", "social media", "phishing", "cyber cell", "identity theft"},
			Category: "Cyber Crime",
			Response: `# Cyber Crime and Online Fraud

Report online fraud immediately; the first hour matters because banks and
the cyber cell can freeze the money trail before it is withdrawn.

## How to Report Online Fraud

1. Call the national cyber crime helpline 1930 as soon as the fraud occurs.
2. File a complaint on the cybercrime.gov.in portal with screenshots,
   transaction IDs, and the fraudster's numbers.
3. Inform your bank in writing within three days; RBI's zero-liability
   circular protects customers who report unauthorized transactions
   promptly.
4. File an FIR at the local police station or cyber cell; cyber offences can
   be reported at any station regardless of where the fraudster sits.

## Common Offences and Penalties

- Identity theft and cheating by personation online: Sections 66C and 66D of
  the IT Act, imprisonment up to three years.
- Hacking and data theft: Section 66 read with Section 43 of the IT Act.
- Publishing obscene material, or threatening over social media, attracts
  the IPC alongside the IT Act.

## Protecting Yourself

- Never share an OTP; no bank or official asks for it.
- Verify UPI collect requests before approving; a request debits your
  account, it does not credit it.
- Preserve evidence before blocking the fraudster: screenshots with visible
  handles, URLs, and timestamps.

---

**Legal Citations:**
- Information Technology Act, 2000: Sections 43, 66, 66C, 66D
- RBI Circular on Customer Protection, July 2017`,
			Citations: []string{
				"Information Technology Act, 2000, Sections 43, 66, 66C, 66D",
				"RBI Circular DBR.No.Leg.BC.78/09.07.005/2017-18",
			},
		},
		{
			Keywords: []string{"cheque bounce", "cheque", "dishonour", "section 138", "loan recovery", "money recovery", "promissory note", "lent money"},
			Category: "Cheque Bounce & Money Recovery",
			Response: `# Cheque Bounce and Money Recovery

A bounced cheque is both a criminal offence and a civil debt. The criminal
route under Section 138 is faster and pressures settlement.

## Procedure After a Cheque Bounces

1. Obtain the cheque return memo from your bank stating the reason for
   dishonour.
2. Send a written demand notice to the drawer within 30 days of the memo.
3. The drawer gets 15 days from receipt to pay.
4. If unpaid, file a complaint before the Magistrate within one month of the
   15 day period expiring.
5. File where your bank branch is located, per the 2015 amendment.

## Punishment

Section 138 of the Negotiable Instruments Act provides imprisonment up to
two years, or a fine up to twice the cheque amount, or both. Courts can
order interim compensation of up to 20 percent of the cheque amount under
Section 143A.

## Recovering Money Lent Without a Cheque

1. A civil suit for recovery lies within three years of the loan falling
   due.
2. WhatsApp chats, bank transfer records, and witnesses are admissible
   evidence of the loan.
3. For commercial debts above one lakh, a summary suit under Order 37 CPC
   skips a full trial unless the court grants leave to defend.

---

**Legal Citations:**
- Negotiable Instruments Act, 1881: Sections 138, 143A
- Code of Civil Procedure, 1908: Order 37
- Limitation Act, 1963: Article 19`,
			Citations: []string{
				"Negotiable Instruments Act, 1881, Sections 138 and 143A",
				"Code of Civil Procedure, 1908, Order 37",
				"Limitation Act, 1963, Article 19",
			},
		},
		{
			Keywords: []string{"landlord", "tenant", "rent", "eviction", "security deposit", "rent agreement", "lease", "deposit refund"},
			Category: "Tenant Rights",
			Response: `# Tenant and Landlord Disputes

Tenancy is governed by state rent control laws and the rent agreement; the
Model Tenancy Act applies where a state has adopted it.

## Security Deposit Refund

1. Demand the refund in writing when vacating, with a copy of the agreement
   and photos of the premises as handed over.
2. The landlord may deduct only documented damage beyond normal wear and
   tear, not repainting as a matter of course.
3. If withheld, send a legal notice and then sue for recovery in civil court
   or, where applicable, before the Rent Authority.
4. Under the Model Tenancy Act the deposit is capped at two months' rent for
   residential premises.

## Eviction Rules

- A landlord cannot evict by force, by changing locks, or by cutting
  electricity; only a court or Rent Authority order can evict a tenant.
- Valid grounds include non-payment of rent, subletting without consent, and
  bona fide personal requirement.
- An eviction suit requires a notice under Section 106 of the Transfer of
  Property Act terminating the tenancy.

## Rent Agreement Essentials

- Register agreements for terms of a year or more; unregistered agreements
  are inadmissible to prove the term.
- Record the deposit amount, notice period, and maintenance split in
  writing.

---

**Legal Citations:**
- Transfer of Property Act, 1882: Sections 106, 108
- Model Tenancy Act, 2021
- Registration Act, 1908: Section 17(1)(d)`,
			Citations: []string{
				"Transfer of Property Act, 1882, Sections 106 and 108",
				"Model Tenancy Act, 2021",
				"Registration Act, 1908, Section 17(1)(d)",
			},
		},
	}
}
